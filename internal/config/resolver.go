package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/SibilSoren/react-vite-boilerplate/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records how one setting was resolved.
type ResolvedValue struct {
	Key    string
	Value  any
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]any
}

// ResolveOptions carries the raw inputs for Resolve. Pointer fields are nil
// when the corresponding flag was not given.
type ResolveOptions struct {
	// Config is the loaded config file. Nil means no file.
	Config *Config

	PackageManager string
	Template       string
	SkipInstall    *bool
	SkipGit        *bool
	Timestamps     *bool
}

// Settings are the effective values after resolution.
type Settings struct {
	PackageManager string
	Template       string
	SkipInstall    bool
	SkipGit        bool
	NetworkCheck   bool
	InstallTimeout time.Duration
	Timestamps     bool

	// Values lists every resolved setting with its source, in a fixed order.
	Values []ResolvedValue
}

// DefaultSettings returns the built-in values with no sources recorded.
func DefaultSettings() *Settings {
	d := DefaultConfig()
	return &Settings{
		Template:       d.Template,
		SkipInstall:    *d.SkipInstall,
		SkipGit:        *d.SkipGit,
		NetworkCheck:   *d.NetworkCheck,
		InstallTimeout: d.InstallTimeout,
		Timestamps:     *d.Log.Timestamps,
	}
}

// Resolve applies flag > env > config > default precedence to every setting.
func Resolve(opts ResolveOptions) (*Settings, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}
	defaults := DefaultConfig()

	s := &Settings{}

	pm := resolveString("packageManager", opts.PackageManager, EnvPackageManager, cfg.PackageManager, "")
	s.PackageManager = pm.Value.(string)

	tmpl := resolveString("template", opts.Template, EnvTemplate, cfg.Template, defaults.Template)
	s.Template = tmpl.Value.(string)

	skipInstall, err := resolveBool("skipInstall", opts.SkipInstall, EnvSkipInstall, cfg.SkipInstall, *defaults.SkipInstall)
	if err != nil {
		return nil, err
	}
	s.SkipInstall = skipInstall.Value.(bool)

	skipGit, err := resolveBool("skipGit", opts.SkipGit, EnvSkipGit, cfg.SkipGit, *defaults.SkipGit)
	if err != nil {
		return nil, err
	}
	s.SkipGit = skipGit.Value.(bool)

	network, err := resolveBool("networkCheck", nil, EnvNetworkCheck, cfg.NetworkCheck, *defaults.NetworkCheck)
	if err != nil {
		return nil, err
	}
	s.NetworkCheck = network.Value.(bool)

	timestamps, err := resolveBool("log.timestamps", opts.Timestamps, "", cfg.Log.Timestamps, *defaults.Log.Timestamps)
	if err != nil {
		return nil, err
	}
	s.Timestamps = timestamps.Value.(bool)

	timeout := ResolvedValue{Key: "installTimeout", Value: defaults.InstallTimeout, Source: SourceDefault}
	if cfg.InstallTimeout > 0 {
		timeout = ResolvedValue{Key: "installTimeout", Value: cfg.InstallTimeout, Source: SourceConfig}
	}
	s.InstallTimeout = timeout.Value.(time.Duration)

	s.Values = []ResolvedValue{pm, tmpl, skipInstall, skipGit, network, timeout, timestamps}
	return s, nil
}

func resolveString(key, flagValue, envVar, configValue, def string) ResolvedValue {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]any)}
	envValue := os.Getenv(envVar)

	switch {
	case flagValue != "":
		rv.Value, rv.Source = flagValue, SourceFlag
		if envValue != "" {
			rv.Shadowed[SourceEnv] = envValue
		}
		if configValue != "" && configValue != envValue {
			rv.Shadowed[SourceConfig] = configValue
		}
	case envValue != "":
		rv.Value, rv.Source = envValue, SourceEnv
		if configValue != "" && configValue != envValue {
			rv.Shadowed[SourceConfig] = configValue
		}
	case configValue != "":
		rv.Value, rv.Source = configValue, SourceConfig
	default:
		rv.Value, rv.Source = def, SourceDefault
	}
	return rv
}

func resolveBool(key string, flagValue *bool, envVar string, configValue *bool, def bool) (ResolvedValue, error) {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]any)}

	var envValue *bool
	if envVar != "" {
		if raw, ok := os.LookupEnv(envVar); ok && raw != "" {
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return rv, fmt.Errorf("invalid %s=%q: expected a boolean", envVar, raw)
			}
			envValue = &b
		}
	}

	switch {
	case flagValue != nil:
		rv.Value, rv.Source = *flagValue, SourceFlag
		if envValue != nil {
			rv.Shadowed[SourceEnv] = *envValue
		}
	case envValue != nil:
		rv.Value, rv.Source = *envValue, SourceEnv
	case configValue != nil:
		rv.Value, rv.Source = *configValue, SourceConfig
	default:
		rv.Value, rv.Source = def, SourceDefault
	}
	return rv, nil
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) RVB_CONFIG env, (3) ~/.react-vite-boilerplate/config.yaml
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvConfig)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	if opts.FlagValue != "" {
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	} else if envValue != "" {
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	} else {
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// LogResolvedValues logs each value's resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
