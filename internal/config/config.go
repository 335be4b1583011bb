// Package config loads the notekeep configuration file and environment
// overrides. A missing config file is not an error; defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Adapter   string        `yaml:"adapter" mapstructure:"adapter"`
	StorePath string        `yaml:"store_path" mapstructure:"store_path"`
	Format    string        `yaml:"format" mapstructure:"format"`
	Augment   AugmentConfig `yaml:"augment" mapstructure:"augment"`
}

type AugmentConfig struct {
	APIKey  string `yaml:"api_key" mapstructure:"api_key"`
	Model   string `yaml:"model" mapstructure:"model"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

var envVarRe = regexp.MustCompile(`\$([A-Z_][A-Z0-9_]*)`)

// expandEnv substitutes $VAR references with their environment values.
// Unset variables are left untouched so the config stays inspectable.
func expandEnv(s string) string {
	return envVarRe.ReplaceAllStringFunc(s, func(match string) string {
		name := strings.TrimPrefix(match, "$")
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return match
	})
}

func DefaultConfig() *Config {
	return &Config{
		Adapter: "fs",
		Format:  "json",
		Augment: AugmentConfig{
			Model: "gpt-4o-mini",
		},
	}
}

// Load reads config.yaml from the working directory, $XDG_CONFIG_HOME/notekeep,
// or ~/.config/notekeep (first found wins), then applies NOTEKEEP_* environment
// overrides, e.g. NOTEKEEP_AUGMENT_API_KEY.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		v.AddConfigPath(filepath.Join(xdg, "notekeep"))
	}
	home, _ := os.UserHomeDir()
	v.AddConfigPath(filepath.Join(home, ".config", "notekeep"))

	v.SetEnvPrefix("NOTEKEEP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults register every key with viper; without this, AutomaticEnv
	// values for keys absent from the config file never reach Unmarshal.
	v.SetDefault("adapter", cfg.Adapter)
	v.SetDefault("store_path", cfg.StorePath)
	v.SetDefault("format", cfg.Format)
	v.SetDefault("augment.api_key", cfg.Augment.APIKey)
	v.SetDefault("augment.model", cfg.Augment.Model)
	v.SetDefault("augment.base_url", cfg.Augment.BaseURL)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// No config file; defaults and environment carry the load.
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	cfg.StorePath = expandEnv(cfg.StorePath)
	cfg.Augment.APIKey = expandEnv(cfg.Augment.APIKey)
	cfg.Augment.BaseURL = expandEnv(cfg.Augment.BaseURL)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Adapter {
	case "fs", "badger":
	default:
		return fmt.Errorf("config: adapter %q is invalid (must be fs or badger)", c.Adapter)
	}
	switch c.Format {
	case "", "json", "yaml", "yml":
	default:
		return fmt.Errorf("config: format %q is invalid (must be json or yaml)", c.Format)
	}
	if c.Augment.Model == "" {
		c.Augment.Model = "gpt-4o-mini"
	}
	return nil
}
