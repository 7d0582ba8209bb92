// Package config reads the jsgen settings from the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v7"

	"github.com/t14raptor/go-jscode/generator"
)

// Config holds the printer defaults and the log level. Command line flags
// override the printer values.
type Config struct {
	IndentAndAlign  bool   `env:"JSGEN_INDENT_AND_ALIGN" envDefault:"true"`
	MinimumCodeSize bool   `env:"JSGEN_MINIMUM_CODE_SIZE" envDefault:"false"`
	Indent          string `env:"JSGEN_INDENT" envDefault:"  "`
	NewLine         string `env:"JSGEN_NEWLINE" envDefault:"\n"`
	LogLevel        string `env:"JSGEN_LOG_LEVEL" envDefault:"info"`
}

// Load parses the process environment, or environ when it is not nil.
func Load(environ map[string]string) (Config, error) {
	var c Config
	if err := env.Parse(&c, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	if _, err := c.level(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Settings returns the printer settings described by c.
func (c Config) Settings() generator.Settings {
	return generator.Settings{
		IndentAndAlign:  c.IndentAndAlign,
		MinimumCodeSize: c.MinimumCodeSize,
		Indent:          c.Indent,
		NewLine:         c.NewLine,
	}
}

// Logger returns a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := c.level()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (c Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
