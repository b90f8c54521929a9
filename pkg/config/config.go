package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// PlaceholderAPIKey is the default Pixabay key shipped in settings.yaml.
// While the configured key equals this value the search layer stays in
// mock mode.
const PlaceholderAPIKey = "your-pixabay-api-key"

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system.
// This should be called once at application startup.
func Init() error {
	once.Do(func() {
		setDefaults()

		// Environment variable overrides, e.g. ZHM_PIXABAY_API_KEY
		viper.SetEnvPrefix("ZHM")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// Missing config file is fine, defaults plus env vars apply
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

func setDefaults() {
	// Server
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1<<20)

	// Database
	viper.SetDefault("database.path", "./data/material.db")
	viper.SetDefault("database.log_queries", false)

	// Pixabay
	viper.SetDefault("pixabay.api_key", PlaceholderAPIKey)
	viper.SetDefault("pixabay.base_url", "https://pixabay.com/api/")
	viper.SetDefault("pixabay.timeout", 8*time.Second)
	viper.SetDefault("pixabay.user_agent", "Mozilla/5.0 (compatible; SearchBot/1.0)")
	viper.SetDefault("pixabay.requests_per_minute", 100)
	viper.SetDefault("pixabay.burst", 5)

	// Translation
	viper.SetDefault("translation.timeout", 3*time.Second)
	viper.SetDefault("translation.provider_timeout", 2*time.Second)
	viper.SetDefault("translation.cache_max_entries", 10000)
	viper.SetDefault("translation.cache_ttl", 24*time.Hour)
	viper.SetDefault("translation.google_url", "https://translate.googleapis.com/translate_a/single")
	viper.SetDefault("translation.libre_url", "https://libretranslate.de/translate")
	viper.SetDefault("translation.mymemory_url", "https://api.mymemory.translated.net/get")

	// Response cache
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.max_size_mb", 64)
	viper.SetDefault("cache.search_ttl", 5*time.Minute)

	// Rate limiting
	viper.SetDefault("rate_limiting.search_rps", 5)
	viper.SetDefault("rate_limiting.search_burst", 10)
	viper.SetDefault("rate_limiting.default_rps", 10)
	viper.SetDefault("rate_limiting.default_burst", 20)
}

// GetConfig returns the current configuration as a struct.
// Init() must be called before using this.
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// PixabayConfigured reports whether a real Pixabay key is present.
// An empty key or the literal placeholder keeps the API in mock mode.
func PixabayConfigured() bool {
	key := viper.GetString("pixabay.api_key")
	return key != "" && key != PlaceholderAPIKey
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		// Database is optional, favorites and history just stay disabled
		fmt.Println("Warning: No database path configured")
	}

	if !PixabayConfigured() {
		fmt.Println("Warning: Pixabay API key not configured, search will return demo data")
	}

	// Auto-correct degenerate translation cache settings
	if viper.GetInt("translation.cache_max_entries") <= 0 {
		viper.Set("translation.cache_max_entries", 10000)
	}
	if viper.GetDuration("translation.cache_ttl") <= 0 {
		viper.Set("translation.cache_ttl", 24*time.Hour)
	}

	return nil
}
