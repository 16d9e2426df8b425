package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// Server
	Host        string
	Port        string
	Environment string
	LogLevel    string

	Server ServerConfig

	Content ContentConfig

	Security SecurityConfig
}

type ServerConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type ContentConfig struct {
	// Rendered default templates kept in memory; 0 disables the cache.
	CacheSize int
}

type SecurityConfig struct {
	AllowedOrigins []string
}

var cfg *Config

// Load initializes the configuration
func Load() error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	loaded := &Config{
		Host:        getEnv("HOST", "127.0.0.1"),
		Port:        getEnv("PORT", "8000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		Server: ServerConfig{
			ReadTimeout:     getEnvAsDuration("READ_TIMEOUT", "15s"),
			WriteTimeout:    getEnvAsDuration("WRITE_TIMEOUT", "15s"),
			IdleTimeout:     getEnvAsDuration("IDLE_TIMEOUT", "60s"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", "30s"),
		},

		Content: ContentConfig{
			CacheSize: getEnvAsInt("CONTENT_CACHE_SIZE", 128),
		},

		Security: SecurityConfig{
			AllowedOrigins: getEnvAsSlice("ALLOWED_ORIGINS", []string{"*"}),
		},
	}

	// Validate configuration
	if err := loaded.validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cfg = loaded
	return nil
}

// Get returns the loaded configuration
func Get() *Config {
	if cfg == nil {
		log.Fatal().Msg("Configuration not loaded. Call Load() first")
	}
	return cfg
}

// Address is the host:port the HTTP server listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

func (c *Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}

	if c.Content.CacheSize < 0 {
		return fmt.Errorf("content cache size must not be negative, got %d", c.Content.CacheSize)
	}

	if len(c.Security.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one allowed origin is required")
	}
	for _, origin := range c.Security.AllowedOrigins {
		if origin == "*" {
			if len(c.Security.AllowedOrigins) > 1 {
				return fmt.Errorf("allowed origin \"*\" cannot be combined with other origins")
			}
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("allowed origin %q must start with http:// or https://", origin)
		}
	}

	return nil
}
