package state

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/Paintersrp/notiz/internal/config"
	"github.com/Paintersrp/notiz/internal/constants"
	"github.com/Paintersrp/notiz/internal/repo"
	"github.com/Paintersrp/notiz/internal/storage"
)

// State bundles everything a command needs for one workspace: the persisted
// config, the storage backend, the note repository and the filesystem
// watcher. It is created once at startup and replaced wholesale when the
// workspace changes.
type State struct {
	Config    *config.Config
	Home      string
	Workspace string
	Backend   *storage.Backend
	Repo      *repo.Repository
	Watcher   *WorkspaceWatcher
}

func NewState() (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	backend := storage.NewBackend(cfg.WorkspaceDir)
	r := repo.NewRepository(backend)
	r.Load()

	watcher, err := NewWorkspaceWatcher(cfg.WorkspaceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace watcher: %w", err)
	}

	return &State{
		Config:    cfg,
		Home:      home,
		Workspace: cfg.WorkspaceDir,
		Backend:   backend,
		Repo:      r,
		Watcher:   watcher,
	}, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	viper.ReadInConfig()

	if err := config.EnsureConfigExists(home); err != nil {
		return nil, err
	}

	return config.Load(home)
}

// Close releases the watcher.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	if s.Watcher != nil {
		err := s.Watcher.Close()
		s.Watcher = nil
		return err
	}
	return nil
}
