// Package logging builds the zerolog loggers used by the converter and CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config contains logging configuration.
type Config struct {
	Level   string `mapstructure:"level" yaml:"level" validate:"oneof=trace debug info warn error"`
	Format  string `mapstructure:"format" yaml:"format" validate:"oneof=console json"`
	Output  string `mapstructure:"output" yaml:"output" validate:"oneof=stdout stderr"`
	NoColor bool   `mapstructure:"no_color" yaml:"no_color"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
}

// New creates a logger writing to the configured output.
func New(cfg Config) zerolog.Logger {
	cfg.ApplyDefaults()
	return NewWithWriter(cfg, outputWriter(cfg.Output))
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	cfg.ApplyDefaults()
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if strings.ToLower(cfg.Format) == "console" {
		w = consoleWriter(w, cfg.NoColor)
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func outputWriter(output string) *os.File {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout
	default:
		return os.Stderr
	}
}

func consoleWriter(w io.Writer, noColor bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
		FormatLevel: func(i interface{}) string {
			lvl := strings.ToUpper(fmt.Sprintf("%s", i))
			tag, color := "["+lvl+"]", ""
			switch lvl {
			case "TRACE":
				tag, color = "[TRC]", "\033[90m"
			case "DEBUG":
				tag, color = "[DBG]", "\033[36m"
			case "INFO":
				tag, color = "[INF]", "\033[32m"
			case "WARN":
				tag, color = "[WRN]", "\033[33m"
			case "ERROR":
				tag, color = "[ERR]", "\033[31m"
			}
			if noColor || color == "" {
				return tag
			}
			return color + tag + "\033[0m"
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s:", i)
		},
	}
}
