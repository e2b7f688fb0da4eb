package config

// ConfigInitError marks a config file that exists but cannot drive the app
// yet, most commonly because no workspace directory has been chosen. Callers
// match it with errors.As to fall back to first-run setup instead of
// treating it as a hard failure.
type ConfigInitError struct {
	msg string
}

func (e *ConfigInitError) Error() string {
	return e.msg
}
