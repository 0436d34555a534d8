package config

import (
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

const (
	defaultPort            = "8080"
	defaultRateLimit       = "100-M"
	defaultAllowedOrigins  = "http://localhost:5173"
	defaultPageSizeSetting = 20
	maxPageSizeSetting     = 100
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	RunMigrations      bool
	CORSAllowedOrigins []string
	RateLimit          limiter.Rate
	DefaultPageSize    int
	MaxPageSize        int
	LogLevel           slog.Level
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Invalid values fall back to their defaults with a warning.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("DEFAULT_PAGE_SIZE", defaultPageSizeSetting)
	v.SetDefault("MAX_PAGE_SIZE", maxPageSizeSetting)
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:   v.GetString("PGSQL_URL"),
		Port:          v.GetString("PORT"),
		IsProduction:  v.GetBool("IS_PRODUCTION"),
		EnableDBCheck: v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations: v.GetBool("RUN_MIGRATIONS"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{defaultAllowedOrigins}
	}

	rateStr := v.GetString("RATE_LIMIT")
	rate, err := limiter.NewRateFromFormatted(rateStr)
	if err != nil {
		log.Printf("Warning: Invalid value for RATE_LIMIT ('%s'). Defaulting to %s.\n", rateStr, defaultRateLimit)
		rate, _ = limiter.NewRateFromFormatted(defaultRateLimit)
	}
	cfg.RateLimit = rate

	cfg.DefaultPageSize = v.GetInt("DEFAULT_PAGE_SIZE")
	if cfg.DefaultPageSize <= 0 {
		log.Printf("Warning: Invalid value for DEFAULT_PAGE_SIZE. Defaulting to %d.\n", defaultPageSizeSetting)
		cfg.DefaultPageSize = defaultPageSizeSetting
	}
	cfg.MaxPageSize = v.GetInt("MAX_PAGE_SIZE")
	if cfg.MaxPageSize < cfg.DefaultPageSize {
		log.Printf("Warning: MAX_PAGE_SIZE is below DEFAULT_PAGE_SIZE. Defaulting to %d.\n", maxPageSizeSetting)
		cfg.MaxPageSize = max(maxPageSizeSetting, cfg.DefaultPageSize)
	}

	levelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", levelStr)
		cfg.LogLevel = slog.LevelInfo
	}

	return cfg, nil
}
