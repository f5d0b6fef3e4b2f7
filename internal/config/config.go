// Package config loads app configuration from an optional config file and
// environment overrides. Defaults are production-ready so no file is needed.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	GatewayBaseURL string        `mapstructure:"gateway_base_url"`
	HTTPTimeout    time.Duration `mapstructure:"http_timeout"`
	DBPath         string        `mapstructure:"db_path"`
	LogLevel       string        `mapstructure:"log_level"`
}

// Load reads config.yaml from the working directory when present, then
// applies CLANKER_* environment overrides (e.g. CLANKER_GATEWAY_BASE_URL).
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("gateway_base_url", "https://openrouter.ai")
	v.SetDefault("http_timeout", 60*time.Second)
	v.SetDefault("db_path", "data/clanker.db")
	v.SetDefault("log_level", "info")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("CLANKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
