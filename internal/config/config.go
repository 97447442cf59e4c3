package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	PostgreSQL PostgreSQLConfig
	Server     ServerConfig
	Redis      RedisConfig
	Chat       ChatConfig
	Seed       SeedConfig
}

// PostgreSQLConfig holds PostgreSQL database configuration
type PostgreSQLConfig struct {
	DSN                string // full connection string, takes precedence when set
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins []string
	StaticDir      string
}

// RedisConfig holds the optional Redis session store configuration.
// Sessions stay in process memory when Addr is empty.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ChatConfig holds the chat-completion API configuration
type ChatConfig struct {
	APIKey        string
	APIBase       string
	Model         string
	Temperature   float64
	MaxTokens     int
	Timeout       int
	SessionTTLMin int
	MaxSessions   int
	Enabled       bool
}

// SeedConfig holds values used only by cmd/seed
type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
	BcryptCost    int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		PostgreSQL: PostgreSQLConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "ambassadeur"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
		},
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 5000),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: splitOrigins(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
			StaticDir:      getEnv("STATIC_DIR", "./web/dist"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Chat: ChatConfig{
			APIKey:        getEnv("CHAT_API_KEY", ""),
			APIBase:       getEnv("CHAT_API_BASE", "https://api.openai.com/v1"),
			Model:         getEnv("CHAT_MODEL", "gpt-4o-mini"),
			Temperature:   getEnvAsFloat("CHAT_TEMPERATURE", 0.7),
			MaxTokens:     getEnvAsInt("CHAT_MAX_TOKENS", 512),
			Timeout:       getEnvAsInt("CHAT_TIMEOUT", 30),
			SessionTTLMin: getEnvAsInt("CHAT_SESSION_TTL_MIN", 60),
			MaxSessions:   getEnvAsInt("CHAT_MAX_SESSIONS", 1000),
			Enabled:       getEnv("CHAT_API_KEY", "") != "",
		},
		Seed: SeedConfig{
			AdminEmail:    getEnv("ADMIN_EMAIL", "admin@ambassadeur-prestige.com"),
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
			BcryptCost:    getEnvAsInt("BCRYPT_COST", 12),
		},
	}

	return cfg, nil
}

// GetPostgreSQLDSN returns the PostgreSQL connection string
func (c *Config) GetPostgreSQLDSN() string {
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgreSQL.Host,
		c.PostgreSQL.Port,
		c.PostgreSQL.User,
		c.PostgreSQL.Password,
		c.PostgreSQL.Database,
		c.PostgreSQL.SSLMode,
	)
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}
