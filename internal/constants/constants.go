package constants

const (
	Version        = `0.1.0`
	ConfigFile     = `notiz`
	ConfigFileType = `yaml`
	ConfigDir      = `/.notiz/`
)
