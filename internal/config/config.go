// Package config provides configuration utilities for the application.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/amazing-numbers/internal/common"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the resolved application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Display DisplayConfig `mapstructure:"display"`
	Search  SearchConfig  `mapstructure:"search"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// DisplayConfig controls how results are written.
type DisplayConfig struct {
	Format string `mapstructure:"format" validate:"oneof=text json yaml"`
	Color  bool   `mapstructure:"color"`
}

// SearchConfig tunes filtered range queries.
type SearchConfig struct {
	// WarnAfter is how many integers a filtered search scans before a
	// warning is logged. Zero disables the warning.
	WarnAfter int64 `mapstructure:"warn_after" validate:"gte=0"`
}

var validate = validator.New()

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("display.format", "text")
	v.SetDefault("display.color", true)
	v.SetDefault("search.warn_after", 10_000_000)
}

// Load reads the configuration from v, which should already have its config
// file, environment and flags wired. Values are validated before returning.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}

	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)
	cfg.Logging.Format = strings.ToLower(cfg.Logging.Format)
	cfg.Display.Format = strings.ToLower(cfg.Display.Format)

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s", common.ErrInvalidConfig, describe(err))
	}
	return cfg, nil
}

func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.ToLower(strings.TrimPrefix(fe.Namespace(), "Config."))
		switch fe.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s check", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
