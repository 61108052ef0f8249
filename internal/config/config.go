// Package config loads the server settings from the environment using Viper.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all the configuration variables for the server
type Config struct {
	GRPCAddr             string        `mapstructure:"GRPC_ADDR"`
	APIToken             string        `mapstructure:"API_TOKEN"`
	DatabaseURL          string        `mapstructure:"DATABASE_URL"`
	SubmitDelay          time.Duration `mapstructure:"SUBMIT_DELAY"`
	SubmitTimeout        time.Duration `mapstructure:"SUBMIT_TIMEOUT"`
	AutoResetDelay       time.Duration `mapstructure:"AUTO_RESET_DELAY"`
	RecentTransfersLimit int           `mapstructure:"RECENT_TRANSFERS_LIMIT"`
	AMQPURL              string        `mapstructure:"AMQP_URL"`
	EventsExchange       string        `mapstructure:"EVENTS_EXCHANGE"`
	LogLevel             string        `mapstructure:"LOG_LEVEL"`
}

var keys = []string{
	"GRPC_ADDR",
	"API_TOKEN",
	"DATABASE_URL",
	"SUBMIT_DELAY",
	"SUBMIT_TIMEOUT",
	"AUTO_RESET_DELAY",
	"RECENT_TRANSFERS_LIMIT",
	"AMQP_URL",
	"EVENTS_EXCHANGE",
	"LOG_LEVEL",
}

// LoadConfig reads configuration from environment variables.
// An empty DATABASE_URL selects the in-memory store and an empty AMQP_URL
// disables event publishing.
func LoadConfig() (config Config, err error) {
	viper.AutomaticEnv()

	viper.SetDefault("GRPC_ADDR", ":8080")
	viper.SetDefault("API_TOKEN", "dev-token")
	viper.SetDefault("SUBMIT_DELAY", 2*time.Second)
	viper.SetDefault("SUBMIT_TIMEOUT", 30*time.Second)
	viper.SetDefault("AUTO_RESET_DELAY", 2*time.Second)
	viper.SetDefault("RECENT_TRANSFERS_LIMIT", 10)
	viper.SetDefault("EVENTS_EXCHANGE", "transfers.events")
	viper.SetDefault("LOG_LEVEL", "info")

	// Bind environment variables explicitly to ensure they appear in Unmarshal
	for _, key := range keys {
		_ = viper.BindEnv(key)
	}

	if err = viper.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Validate checks the loaded values
func (c Config) Validate() error {
	if c.GRPCAddr == "" {
		return errors.New("GRPC_ADDR cannot be empty")
	}
	if c.APIToken == "" {
		return errors.New("API_TOKEN cannot be empty")
	}
	if c.SubmitDelay < 0 {
		return errors.New("SUBMIT_DELAY cannot be negative")
	}
	if c.SubmitTimeout <= 0 {
		return errors.New("SUBMIT_TIMEOUT must be positive")
	}
	// A negative delay disables the automatic reset
	if c.AutoResetDelay == 0 {
		return errors.New("AUTO_RESET_DELAY cannot be zero")
	}
	if c.RecentTransfersLimit <= 0 {
		return errors.New("RECENT_TRANSFERS_LIMIT must be positive")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LOG_LEVEL
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}
