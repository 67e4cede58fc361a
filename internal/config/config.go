package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "csv-flashcards/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "FLASHCARDS"
	ConfigFileName = "flashcards"
)

// Config holds all application configuration
type Config struct {
	LogLevel     string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogJSON      bool   `mapstructure:"log_json"`
	Loop         bool   `mapstructure:"loop"`
	Seed         uint64 `mapstructure:"seed"`
	File         string `mapstructure:"file"`
	TUI          bool   `mapstructure:"tui"`
	WindowWidth  int    `mapstructure:"window_width" validate:"gte=400,lte=10000"`
	WindowHeight int    `mapstructure:"window_height" validate:"gte=300,lte=10000"`

	LoadTimeout time.Duration `mapstructure:"load_timeout" validate:"gt=0"`
}

// flagKeys maps config keys to the command line flags that override them
var flagKeys = map[string]string{
	"log_level": "log-level",
	"log_json":  "log-json",
	"loop":      "loop",
	"seed":      "seed",
	"tui":       "tui",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)
	v.SetDefault("loop", false)
	v.SetDefault("seed", 0)
	v.SetDefault("file", "")
	v.SetDefault("tui", false)
	v.SetDefault("window_width", 900)
	v.SetDefault("window_height", 600)
	v.SetDefault("load_timeout", "30s")
}

// Load reads configuration from, lowest to highest precedence: defaults, an
// optional flashcards.yaml in the working directory, FLASHCARDS_* environment
// variables (a .env file is loaded into the environment first) and flags.
func Load(flags *pflag.FlagSet) (*Config, error) {
	// Ignore error so the app still starts when .env is absent.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, apperrors.NewConfigError(fmt.Errorf("reading config file: %w", err))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, apperrors.NewConfigError(fmt.Errorf("binding flag %s: %w", name, err))
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperrors.NewConfigError(fmt.Errorf("decoding config: %w", err))
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints and reports every violation at once
func (c Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewConfigError(err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", envName(fe.StructField()), fe.Tag(), fe.Value()))
	}
	return apperrors.NewConfigError(errors.New(strings.Join(msgs, "; ")))
}

// envName returns the environment variable that sets a Config field
func envName(field string) string {
	switch field {
	case "LogLevel":
		return EnvPrefix + "_LOG_LEVEL"
	case "WindowWidth":
		return EnvPrefix + "_WINDOW_WIDTH"
	case "WindowHeight":
		return EnvPrefix + "_WINDOW_HEIGHT"
	case "LoadTimeout":
		return EnvPrefix + "_LOAD_TIMEOUT"
	default:
		return field
	}
}
