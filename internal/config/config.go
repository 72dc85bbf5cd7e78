// Package config loads pctnorm settings from flags, environment variables
// and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jmylchreest/pctnorm/internal/input"
)

// EnvPrefix prefixes every environment variable, e.g. PCTNORM_SERVE_ADDR.
const EnvPrefix = "PCTNORM"

// Config holds all pctnorm settings.
type Config struct {
	Debug bool `mapstructure:"debug"`
	Quiet bool `mapstructure:"quiet"`

	Log LogConfig `mapstructure:"log"`

	// Format is the output format for normalized values.
	Format string `mapstructure:"format" validate:"oneof=text json yaml"`

	// Compact disables pretty-printing of JSON output.
	Compact bool `mapstructure:"compact"`

	// Indent is the JSON indentation used unless Compact is set.
	Indent string `mapstructure:"indent"`

	// FoldWidth folds full-width digits and symbols before cleaning.
	FoldWidth bool `mapstructure:"fold_width"`

	// Prompt is shown when the value is read interactively.
	Prompt string `mapstructure:"prompt"`

	Serve ServeConfig `mapstructure:"serve"`
}

// LogConfig configures diagnostics.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn warning error"`
	JSON  bool   `mapstructure:"json"`
}

// ServeConfig configures the HTTP wrapper.
type ServeConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required,hostname_port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes" validate:"min=1"`
}

// Defaults
const (
	DefaultFormat          = "text"
	DefaultIndent          = "  "
	DefaultAddr            = "127.0.0.1:8080"
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxBodyBytes    = 64 << 10
)

// Setup registers defaults and environment bindings on v.
func Setup(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("quiet", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("fold_width", false)
	v.SetDefault("compact", false)
	v.SetDefault("indent", DefaultIndent)
	v.SetDefault("prompt", input.DefaultPrompt)
	v.SetDefault("serve.addr", DefaultAddr)
	v.SetDefault("serve.read_timeout", DefaultReadTimeout)
	v.SetDefault("serve.write_timeout", DefaultWriteTimeout)
	v.SetDefault("serve.shutdown_timeout", DefaultShutdownTimeout)
	v.SetDefault("serve.max_body_bytes", DefaultMaxBodyBytes)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// ReadFile reads the config file. An explicit path must exist; otherwise
// .pctnorm.yaml is looked up in the home and working directories and a
// missing file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		return nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")
	v.SetConfigName(".pctnorm")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
