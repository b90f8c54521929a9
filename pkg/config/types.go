package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Server       ServerConfig      `mapstructure:"server"`
	Database     DatabaseConfig    `mapstructure:"database"`
	Pixabay      PixabayConfig     `mapstructure:"pixabay"`
	Translation  TranslationConfig `mapstructure:"translation"`
	Cache        CacheConfig       `mapstructure:"cache"`
	RateLimiting RateLimitConfig   `mapstructure:"rate_limiting"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path       string `mapstructure:"path"`
	LogQueries bool   `mapstructure:"log_queries"`
}

// PixabayConfig contains Pixabay API settings
type PixabayConfig struct {
	APIKey            string        `mapstructure:"api_key"`
	BaseURL           string        `mapstructure:"base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	UserAgent         string        `mapstructure:"user_agent"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
	Burst             int           `mapstructure:"burst"`
}

// TranslationConfig contains translation resolver settings
type TranslationConfig struct {
	Timeout         time.Duration `mapstructure:"timeout"`
	ProviderTimeout time.Duration `mapstructure:"provider_timeout"`
	CacheMaxEntries int           `mapstructure:"cache_max_entries"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
	GoogleURL       string        `mapstructure:"google_url"`
	LibreURL        string        `mapstructure:"libre_url"`
	MyMemoryURL     string        `mapstructure:"mymemory_url"`
}

// CacheConfig contains HTTP response cache settings
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	MaxSizeMB int64         `mapstructure:"max_size_mb"`
	SearchTTL time.Duration `mapstructure:"search_ttl"`
}

// RateLimitConfig contains per-client rate limiting settings
type RateLimitConfig struct {
	SearchRPS    int `mapstructure:"search_rps"`
	SearchBurst  int `mapstructure:"search_burst"`
	DefaultRPS   int `mapstructure:"default_rps"`
	DefaultBurst int `mapstructure:"default_burst"`
}
