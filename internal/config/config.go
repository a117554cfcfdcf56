// Package config loads converter settings from defaults, an optional YAML
// file, an optional .env file, OTO2SEG_* environment variables and command
// line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ieee0824/oto2seg/internal/logging"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "OTO2SEG"

// Config holds every setting of a conversion run.
type Config struct {
	Encoding       string         `mapstructure:"encoding" validate:"oneof=shift-jis utf-8"`
	Dictionary     string         `mapstructure:"dictionary"`
	SkipCompletion bool           `mapstructure:"skip_completion"`
	Bleed          float64        `mapstructure:"bleed" validate:"gte=0"`
	Report         string         `mapstructure:"report"`
	Log            logging.Config `mapstructure:"log"`
}

// flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"encoding":    "encoding",
	"dict":        "dictionary",
	"no-complete": "skip_completion",
	"bleed":       "bleed",
	"report":      "report",
	"log-level":   "log.level",
	"log-format":  "log.format",
}

// Options selects the sources Load reads besides defaults and environment.
type Options struct {
	ConfigFile string         // YAML file; optional
	EnvFile    string         // .env file; optional, missing is not an error
	Flags      *pflag.FlagSet // flags named as in flagKeys; optional
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("encoding", "shift-jis")
	v.SetDefault("dictionary", "")
	v.SetDefault("skip_completion", false)
	v.SetDefault("bleed", 100.0)
	v.SetDefault("report", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("log.no_color", false)
}

// Load resolves and validates the configuration.
func Load(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", opts.EnvFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", opts.ConfigFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			f := opts.Flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Encoding = strings.ToLower(cfg.Encoding)
	cfg.Log.ApplyDefaults()

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and reports every violation.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: must satisfy %s (got %v)", e.Namespace(), formatTag(e), e.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func formatTag(e validator.FieldError) string {
	if e.Param() == "" {
		return e.Tag()
	}
	return e.Tag() + "=" + e.Param()
}
