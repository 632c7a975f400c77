package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Supported input encodings
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1252 = "windows-1252"
)

// Supported log formats
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// EnvPrefix is prepended to environment variable names, e.g. TST_LOG_LEVEL
const EnvPrefix = "TST"

var (
	ErrUnsupportedEncoding  = errors.New("unsupported input encoding")
	ErrUnsupportedLogFormat = errors.New("unsupported log format")
)

// Config holds all configuration for the tst command
type Config struct {
	Input    string       `mapstructure:"input"`
	Encoding string       `mapstructure:"encoding"`
	Load     LoadConfig   `mapstructure:"load"`
	Search   SearchConfig `mapstructure:"search"`
	Log      LogConfig    `mapstructure:"log"`
}

// LoadConfig holds word list loading configuration
type LoadConfig struct {
	// Balanced inserts the words medians first instead of in input order
	Balanced bool `mapstructure:"balanced"`
}

// SearchConfig holds search related configuration
type SearchConfig struct {
	Exact bool `mapstructure:"exact"`
}

// LogConfig holds logging related configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps command-line flag names to configuration keys
var flagKeys = map[string]string{
	"input":      "input",
	"encoding":   "encoding",
	"balanced":   "load.balanced",
	"exact":      "search.exact",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// Load loads configuration from defaults, an optional config file,
// TST_* environment variables and finally any flags that were set.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Encoding = strings.ToLower(cfg.Encoding)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("input", "-")
	v.SetDefault("encoding", EncodingUTF8)
	v.SetDefault("load.balanced", false)
	v.SetDefault("search.exact", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", LogFormatConsole)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input cannot be empty")
	}

	switch c.Encoding {
	case EncodingUTF8, EncodingWindows1252:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedEncoding, c.Encoding)
	}

	switch c.Log.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedLogFormat, c.Log.Format)
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}

	return nil
}
