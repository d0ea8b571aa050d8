package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Catalog   CatalogConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

// RateLimitConfig bounds search traffic; the suggestion endpoint fires on
// every keystroke.
type RateLimitConfig struct {
	RequestsPerWindow int
	WindowSeconds     int
}

// CatalogConfig holds the default result sizes for catalog queries.
type CatalogConfig struct {
	PageSize        int
	FeaturedLimit   int
	RelatedLimit    int
	SearchLimit     int
	SuggestionLimit int
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATE_LIMIT_REQUESTS", 30)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)
	viper.SetDefault("CATALOG_PAGE_SIZE", 12)
	viper.SetDefault("CATALOG_FEATURED_LIMIT", 8)
	viper.SetDefault("CATALOG_RELATED_LIMIT", 4)
	viper.SetDefault("CATALOG_SEARCH_LIMIT", 20)
	viper.SetDefault("CATALOG_SUGGESTION_LIMIT", 5)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("REDIS_ENABLED"),
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerWindow: viper.GetInt("RATE_LIMIT_REQUESTS"),
			WindowSeconds:     viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
		Catalog: CatalogConfig{
			PageSize:        viper.GetInt("CATALOG_PAGE_SIZE"),
			FeaturedLimit:   viper.GetInt("CATALOG_FEATURED_LIMIT"),
			RelatedLimit:    viper.GetInt("CATALOG_RELATED_LIMIT"),
			SearchLimit:     viper.GetInt("CATALOG_SEARCH_LIMIT"),
			SuggestionLimit: viper.GetInt("CATALOG_SUGGESTION_LIMIT"),
		},
	}
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
