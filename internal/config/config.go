package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// Config holds all configuration for the application.
// It is built once at startup and must not be mutated afterwards.
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// JWT configuration
	JWT JWTConfig

	// Password hashing configuration
	Auth AuthConfig

	// CORS configuration
	CORS CORSConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	URL         string
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	MaxConns    int32
	MinConns    int32
	MaxLifetime time.Duration
	ConnTimeout time.Duration
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret         string
	AccessTokenTTL time.Duration
}

// AuthConfig holds password hashing configuration
type AuthConfig struct {
	BcryptCost int
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file
	if err := godotenv.Load("../.env"); err != nil {
		// Try loading from current directory if not found in parent
		if err := godotenv.Load(".env"); err != nil {
			log.Warn().Err(err).Msg(".env file not found, using process environment")
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Database: DatabaseConfig{
			URL:         getEnv("DATABASE_URL", ""),
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "5432"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", ""),
			Name:        getEnv("DB_NAME", "notes_db"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			MaxConns:    getInt32Env("DB_MAX_CONNS", 5),
			MinConns:    getInt32Env("DB_MIN_CONNS", 0),
			MaxLifetime: getDurationEnv("DB_MAX_LIFETIME", time.Hour),
			ConnTimeout: getDurationEnv("DB_CONN_TIMEOUT", 10*time.Second),
		},
		JWT: JWTConfig{
			Secret:         getEnv("JWT_SECRET", ""),
			AccessTokenTTL: getDurationEnv("JWT_ACCESS_TTL", time.Hour),
		},
		Auth: AuthConfig{
			BcryptCost: getIntEnv("BCRYPT_COST", bcrypt.DefaultCost),
		},
		CORS: CORSConfig{
			AllowedOrigins:   getStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods:   getStringSliceEnv("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getStringSliceEnv("CORS_ALLOWED_HEADERS", []string{"Authorization", "Content-Type"}),
			AllowCredentials: getBoolEnv("CORS_ALLOW_CREDENTIALS", false),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getBoolEnv("LOG_PRETTY", true),
		},
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.JWT.AccessTokenTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be positive, got %s", c.JWT.AccessTokenTTL)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}
	if c.Database.URL == "" && c.Database.Host == "" {
		return fmt.Errorf("either DATABASE_URL or DB_HOST is required")
	}

	if len(c.JWT.Secret) < 32 {
		log.Warn().Int("length", len(c.JWT.Secret)).Msg("JWT_SECRET is shorter than 32 bytes")
	}

	return nil
}

// GetDSN returns the database connection string. DATABASE_URL wins over
// the individual DB_* settings.
func (c *Config) GetDSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&connect_timeout=%d",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
		int(c.Database.ConnTimeout.Seconds()),
	)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getInt32Env(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intValue)
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := []string{}
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) > 0 {
			return parts
		}
	}
	return defaultValue
}
