// Package config loads caldesk's runtime configuration.
package config

import "github.com/spf13/viper"

// Config holds all runtime configuration for a caldesk session.
// Values are populated from .caldesk.yaml, CALDESK_* env vars, and CLI flags.
type Config struct {
	DBPath   string `mapstructure:"db_path"`
	UserID   string `mapstructure:"user_id"`
	UserName string `mapstructure:"user_name"`
	WatchDB  bool   `mapstructure:"watch_db"`
	Verbose  bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("db_path", ".caldesk/caldesk.db")
	viper.SetDefault("user_id", "")
	viper.SetDefault("user_name", "")
	viper.SetDefault("watch_db", true)
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
