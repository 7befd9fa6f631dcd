package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

var validate = validator.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server configuration
	Port int    `json:"port" validate:"required,gt=0,lte=65535"`
	Host string `json:"host" validate:"required"`

	// Database configuration
	DBDriver   string `json:"db_driver" validate:"required,oneof=postgres postgresql sqlite"`
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBName     string `json:"db_name"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBSSLMode  string `json:"db_ssl_mode"`
	DBPath     string `json:"db_path"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Security configuration
	JWTSecret             string `json:"jwt_secret" validate:"required,min=32"`
	AccessTokenTTLMinutes int    `json:"access_token_ttl_minutes" validate:"required,gt=0"`
	RefreshTokenTTLHours  int    `json:"refresh_token_ttl_hours" validate:"required,gt=0"`
}

// AccessTokenTTL returns the access token lifetime as a duration.
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenTTLMinutes) * time.Minute
}

// RefreshTokenTTL returns the refresh token lifetime as a duration.
func (c *Config) RefreshTokenTTL() time.Duration {
	return time.Duration(c.RefreshTokenTTLHours) * time.Hour
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, DBDriver: %s, DBHost: %s, DBPort: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], DBSSLMode: %s, DBPath: %s, LogLevel: %s, JWTSecret: [REDACTED], AccessTokenTTL: %s, RefreshTokenTTL: %s}",
		c.Port, c.Host, c.DBDriver, c.DBHost, c.DBPort, c.DBName, c.DBUser, c.DBSSLMode, c.DBPath, c.LogLevel, c.AccessTokenTTL(), c.RefreshTokenTTL())
}

// LoadConfig reads the configuration from environment variables, applies
// defaults and validates the result.
// Returns an error if any value fails validation, for example a JWT secret
// shorter than 32 characters.
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config := &Config{
		Port:                  port,
		Host:                  GetEnvWithDefault("APP_HOST", "localhost"),
		DBDriver:              GetEnvWithDefault("DB_DRIVER", "sqlite"),
		DBHost:                GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:                GetEnvWithDefault("DB_PORT", "5432"),
		DBName:                GetEnvWithDefault("DB_NAME", "pizza_catalog"),
		DBUser:                GetEnvWithDefault("DB_USER", "postgres"),
		DBPassword:            GetEnvWithDefault("DB_PASSWORD", "postgres"),
		DBSSLMode:             GetEnvWithDefault("DB_SSL_MODE", "disable"),
		DBPath:                GetEnvWithDefault("DB_PATH", "pizza.sqlite"),
		LogLevel:              GetEnvWithDefault("LOG_LEVEL", "info"),
		JWTSecret:             GetEnvWithDefault("JWT_SECRET", "dev-only-secret-change-me-0123456789"),
		AccessTokenTTLMinutes: GetEnvAsType("ACCESS_TOKEN_TTL_MINUTES", 30),
		RefreshTokenTTLHours:  GetEnvAsType("REFRESH_TOKEN_TTL_HOURS", 168),
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Warnf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
