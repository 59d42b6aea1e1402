package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

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
	// Server Configuration
	Port int    `json:"port"`
	Host string `json:"host"`

	// CORS Configuration (browser frontend origin)
	CORSAllowOrigin string `json:"cors_allow_origin"`

	// Database configuration
	DBDriver   string `json:"db_driver"`
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBName     string `json:"db_name"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBSSLMode  string `json:"db_ssl_mode"`
	DBPath     string `json:"db_path"`

	// Connection pool bounds. The pool is the only shared resource; bounding
	// it and timing out waiters is the admission control for the whole API.
	DBMaxOpenConns    int           `json:"db_max_open_conns"`
	DBMaxIdleConns    int           `json:"db_max_idle_conns"`
	DBConnMaxLifetime time.Duration `json:"db_conn_max_lifetime"`
	DBQueryTimeout    time.Duration `json:"db_query_timeout"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Security Configuration
	JWTSecret string `json:"jwt_secret"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, CORSAllowOrigin: %s, DBDriver: %s, DBHost: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], DBPath: %s, DBMaxOpenConns: %d, DBMaxIdleConns: %d, DBConnMaxLifetime: %s, DBQueryTimeout: %s, LogLevel: %s, JWTSecret: [REDACTED]}",
		c.Port, c.Host, c.CORSAllowOrigin, c.DBDriver, c.DBHost, c.DBName, c.DBUser, c.DBPath,
		c.DBMaxOpenConns, c.DBMaxIdleConns, c.DBConnMaxLifetime, c.DBQueryTimeout, c.LogLevel)
}

// LoadConfig reads the application configuration from environment variables.
// Returns an error if any variable has an invalid format.
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, err
	}

	connMaxLifetime, err := time.ParseDuration(GetEnvWithDefault("DB_CONN_MAX_LIFETIME", "5m"))
	if err != nil {
		return nil, err
	}

	queryTimeout, err := time.ParseDuration(GetEnvWithDefault("DB_QUERY_TIMEOUT", "5s"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		Port:              port,
		Host:              GetEnvWithDefault("APP_HOST", "localhost"),
		CORSAllowOrigin:   GetEnvWithDefault("CORS_ALLOW_ORIGIN", "http://localhost:5173"),
		DBDriver:          GetEnvWithDefault("DB_DRIVER", "sqlite"),
		DBHost:            GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:            GetEnvWithDefault("DB_PORT", "5432"),
		DBName:            GetEnvWithDefault("DB_NAME", "pizza_app_db"),
		DBUser:            GetEnvWithDefault("DB_USER", "pizza_user"),
		DBPassword:        GetEnvWithDefault("DB_PASSWORD", "pizza_password123"),
		DBSSLMode:         GetEnvWithDefault("DB_SSL_MODE", "disable"),
		DBPath:            GetEnvWithDefault("DB_PATH", "pizza.sqlite"),
		DBMaxOpenConns:    GetEnvAsType("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:    GetEnvAsType("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetime: connMaxLifetime,
		DBQueryTimeout:    queryTimeout,
		LogLevel:          GetEnvWithDefault("LOG_LEVEL", "info"),
		JWTSecret:         GetEnvWithDefault("JWT_SECRET", "secret"),
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
