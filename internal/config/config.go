package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Port        string // Listen address, e.g. ":8080"
	DataDir     string // Directory of preprocessed dataset JSON files
	DataBaseURL string // Optional HTTP base URL; overrides DataDir when set
	LogLevel    string // debug, info, warn, error
	RateLimit   int    // Requests per IP per minute, 0 disables
}

// Load reads configuration from the environment with sane defaults. All keys
// use the EMISSIONS_ prefix (EMISSIONS_PORT, EMISSIONS_DATA_DIR, ...).
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("emissions")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", ":8080")
	v.SetDefault("data_dir", "./data")
	v.SetDefault("data_base_url", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("rate_limit", 600)

	return &Config{
		Port:        v.GetString("port"),
		DataDir:     v.GetString("data_dir"),
		DataBaseURL: v.GetString("data_base_url"),
		LogLevel:    v.GetString("log_level"),
		RateLimit:   v.GetInt("rate_limit"),
	}
}
