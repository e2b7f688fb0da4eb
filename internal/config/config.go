package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spf13/viper"
)

// Config is the persisted application preferences: most importantly the
// workspace root every storage operation is scoped under.
type Config struct {
	WorkspaceDir string `yaml:"workspacedir" json:"workspace_dir"`

	home string `yaml:"-"`
}

func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{home: home}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.syncViper()
	return cfg, nil
}

func (cfg *Config) GetConfigPath() string {
	return GetConfigPath(cfg.home)
}

// HasWorkspace reports whether a workspace root has been configured.
func (cfg *Config) HasWorkspace() bool {
	return strings.TrimSpace(cfg.WorkspaceDir) != ""
}

// ChangeWorkspace validates the directory, stores its absolute path and
// persists the config.
func (cfg *Config) ChangeWorkspace(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve workspace path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("stat workspace path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("workspace path %q is not a directory", abs)
	}

	cfg.WorkspaceDir = abs
	return cfg.Save()
}

func (cfg *Config) Save() error {
	cfg.syncViper()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	configPath := cfg.GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

func (cfg *Config) syncViper() {
	viper.Set("workspacedir", cfg.WorkspaceDir)
}
