// Package config loads tool configuration and resolves the cache root.
//
// Sources, in order of precedence: the CACHEPATH environment variable,
// the config file, defaults. A root entered interactively is persisted
// back to both the environment and the config file.
package config

import (
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvCacheRoot is the host environment variable holding the cache root.
const EnvCacheRoot = "CACHEPATH"

// Config captures everything configurable about the tool.
type Config struct {
	// Logging controls log output behavior.
	Logging LoggingConfig `mapstructure:"logging"`

	// CacheRoot is the top-level directory under which all versioned
	// artifacts are stored. Empty means unresolved; the resolver will
	// prompt for it.
	CacheRoot string `mapstructure:"cache_root"`

	// Workers bounds the top-level scan fan-out. Zero means one worker
	// per CPU.
	Workers uint `mapstructure:"workers" validate:"lte=256"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output.
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "locate user config dir")
	}
	return filepath.Join(dir, "cachemgr", "config.yaml"), nil
}

// Load reads the config file at path, which may not exist yet, applies
// env bindings and defaults, and validates the result. The returned
// viper instance is kept so the resolver can persist a prompted root.
func Load(path string) (*Config, *viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("logging.level", "INFO")
	v.SetDefault("cache_root", "")
	v.SetDefault("workers", 0)
	_ = v.BindEnv("cache_root", EnvCacheRoot)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(errors.Cause(err)) {
			return nil, nil, errors.Wrapf(err, "read config %v", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, nil, errors.Wrap(err, "unmarshal config")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, v, nil
}
