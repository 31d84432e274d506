package config

// GlobalConfig holds CLI-wide state resolved during PersistentPreRunE. It is
// populated once at startup and passed into every command constructor.
type GlobalConfig struct {
	// Config is the loaded file merged with RVB_* variables. Nil when
	// loading failed.
	Config *Config

	// LoadErr is the error from loading or resolving configuration.
	// Commands that depend on configuration report it.
	LoadErr error

	// ConfigPath is the resolved --config path and ConfigSource its origin.
	ConfigPath   string
	ConfigSource ConfigSource

	// Settings are the effective values. Never nil after PersistentPreRunE.
	Settings *Settings

	Verbose bool
}
