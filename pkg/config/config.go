package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Slack  SlackConfig  `mapstructure:"slack"`
	Export ExportConfig `mapstructure:"export"`
}

type SlackConfig struct {
	Token string `mapstructure:"token"`
}

type ExportConfig struct {
	// Timezone in which dates on the command line are interpreted and
	// readable times are rendered.
	Timezone string `mapstructure:"timezone"`
	// PageSize is the number of messages requested per history page.
	PageSize int `mapstructure:"page_size"`
	// RateLimitDelay is the courtesy pause between consecutive API calls.
	RateLimitDelay time.Duration `mapstructure:"rate_limit_delay"`
	// MaxRateLimitRetries caps rate-limit retries per page; 0 means retry
	// for as long as the server keeps sending wait hints.
	MaxRateLimitRetries int `mapstructure:"max_rate_limit_retries"`
}

// LoadConfig builds the configuration from an optional YAML file plus
// environment variables. SLACK_TOKEN always wins over the file value.
// A missing config file is not an error; a missing token is.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("export.timezone", "Asia/Tokyo")
	v.SetDefault("export.page_size", 200)
	v.SetDefault("export.rate_limit_delay", "1s")
	v.SetDefault("export.max_rate_limit_retries", 0)

	// Enable environment variable support
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if token := v.GetString("SLACK_TOKEN"); token != "" {
		config.Slack.Token = token
	}

	if config.Slack.Token == "" {
		return nil, errors.New("slack token is not set: provide SLACK_TOKEN or slack.token in the config file")
	}

	return &config, nil
}
