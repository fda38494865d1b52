// Package config provides configuration loading and validation for the
// codestats tool.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the complete codestats configuration.
type Config struct {
	Sources SourcesConfig
	Crypto  CryptoConfig
	Output  OutputConfig
}

// SourcesConfig selects which code providers the report covers.
type SourcesConfig struct {
	Fiat   bool `mapstructure:"fiat"`
	Crypto bool `mapstructure:"crypto"`
}

// CryptoConfig holds the optional cryptocurrency source filter. Zero values
// disable the corresponding filter; at most one filter may be enabled.
type CryptoConfig struct {
	MaxLength  int     `mapstructure:"max_length"`
	Percentage float64 `mapstructure:"percentage"`
}

// OutputConfig holds report rendering settings.
type OutputConfig struct {
	TargetLength int  `mapstructure:"target_length"` // length highlighted in the report
	Color        bool `mapstructure:"color"`
}

// LoadConfig reads configuration from config files, environment variables, and defaults.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file found or error loading it: %v\n", err)
	}

	viper.SetConfigName("codestats")
	viper.SetConfigType("yaml")

	// Config search paths
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("CODESTATS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// default values
	viper.SetDefault("sources.fiat", true)
	viper.SetDefault("sources.crypto", true)
	viper.SetDefault("crypto.max_length", 0)
	viper.SetDefault("crypto.percentage", 0.0)
	viper.SetDefault("output.target_length", 3)
	viper.SetDefault("output.color", true)

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if no config file, we have defaults and env
		fmt.Printf("Config file not found: %v\n", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks that all configuration fields are set and consistent.
func (c *Config) Validate() error {
	var errs []error
	if !c.Sources.Fiat && !c.Sources.Crypto {
		errs = append(errs, fmt.Errorf("at least one of sources.fiat and sources.crypto must be enabled"))
	}

	if c.Crypto.MaxLength < 0 {
		errs = append(errs, fmt.Errorf("crypto.max_length must be non-negative, got %d", c.Crypto.MaxLength))
	}
	if c.Crypto.Percentage < 0 || c.Crypto.Percentage > 1 {
		errs = append(errs, fmt.Errorf("crypto.percentage must be in [0, 1], got %v", c.Crypto.Percentage))
	}
	if c.Crypto.MaxLength > 0 && c.Crypto.Percentage > 0 {
		errs = append(errs, fmt.Errorf("crypto.max_length and crypto.percentage are mutually exclusive"))
	}

	if c.Output.TargetLength <= 0 {
		errs = append(errs, fmt.Errorf("output.target_length must be positive, got %d", c.Output.TargetLength))
	}

	return errors.Join(errs...)
}
