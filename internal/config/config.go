package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hance08/ledger/internal/constants"
	"github.com/pterm/pterm"
	"github.com/spf13/viper"
)

type Config struct {
	Remote     RemoteConfig   `mapstructure:"remote"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	Sync       SyncConfig     `mapstructure:"sync"`
	ConfigPath string         `mapstructure:"-"`
}

type RemoteConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type SyncConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

func NewDefault() *Config {
	return &Config{
		Remote:   RemoteConfig{BaseURL: constants.DefaultBaseURL},
		Defaults: DefaultsConfig{Currency: constants.DefaultCurrency},
		Log:      LogConfig{Level: constants.DefaultLogLevel},
		Sync:     SyncConfig{Concurrency: 4},
	}
}

// SetDefaults registers every key with its default so that a freshly written
// config file lists them all and env overrides resolve without a file.
func SetDefaults(v *viper.Viper) {
	d := NewDefault()
	v.SetDefault("remote.base_url", d.Remote.BaseURL)
	v.SetDefault("defaults.currency", d.Defaults.Currency)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("sync.concurrency", d.Sync.Concurrency)
}

// Decode unmarshals v on top of the defaults and validates the result.
func Decode(v *viper.Viper) (*Config, error) {
	cfg := NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Defaults.Currency = strings.ToUpper(strings.TrimSpace(cfg.Defaults.Currency))
	cfg.ConfigPath = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.Remote.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("remote.base_url %q must be an http(s) url", c.Remote.BaseURL)
	}
	if len(c.Defaults.Currency) != 3 {
		return fmt.Errorf("defaults.currency %q must be a 3-letter code (e.g. USD)", c.Defaults.Currency)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Sync.Concurrency < 1 {
		return fmt.Errorf("sync.concurrency must be at least 1")
	}
	return nil
}

// LogLevel maps log.level to a pterm level.
func (c *Config) LogLevel() (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info", "":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	case "off", "disabled":
		return pterm.LogLevelDisabled, nil
	default:
		return 0, fmt.Errorf("log.level %q must be one of trace, debug, info, warn, error, off", c.Log.Level)
	}
}
