package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Database (transcript persistence)
	Database DatabaseConfig

	// Session store
	Session SessionConfig

	// Clinic info surfaced in replies
	Clinic ClinicConfig
}

type DatabaseConfig struct {
	Type     string // currently only "mongodb"
	Enabled  bool
	URI      string
	Name     string
	Host     string
	Port     string
	Username string
	Password string

	// Connection pool settings
	MaxConnections int
	MinConnections int
	MaxIdleTime    time.Duration
}

type SessionConfig struct {
	StoreType string // "memory" or "redis"
	RedisURL  string
	TTL       time.Duration
}

type ClinicConfig struct {
	Name  string
	Phone string
	Hours string
}

var cfg *Config

// Load initializes the configuration from .env / environment variables.
func Load() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg = &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		Database: DatabaseConfig{
			Type:     getEnv("DB_TYPE", "mongodb"),
			Enabled:  getEnvAsBool("DB_ENABLED", true),
			URI:      getEnv("DATABASE_URL", ""),
			Name:     getEnv("DB_NAME", "clinic_triage"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "27017"),
			Username: getEnv("DB_USERNAME", ""),
			Password: getEnv("DB_PASSWORD", ""),

			MaxConnections: getEnvAsInt("DB_MAX_CONNECTIONS", 100),
			MinConnections: getEnvAsInt("DB_MIN_CONNECTIONS", 10),
			MaxIdleTime:    getEnvAsDuration("DB_MAX_IDLE_TIME", "30m"),
		},

		Session: SessionConfig{
			StoreType: getEnv("SESSION_STORE", "memory"),
			RedisURL:  getEnv("REDIS_URL", "redis://localhost:6379/0"),
			TTL:       getEnvAsDuration("SESSION_TTL", "30m"),
		},

		Clinic: ClinicConfig{
			Name:  getEnv("CLINIC_NAME", "HealthCare Clinic"),
			Phone: getEnv("CLINIC_PHONE", "123-456-789"),
			Hours: getEnv("CLINIC_HOURS", "Mon-Fri: 9AM-6PM"),
		},
	}

	if err := validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	return nil
}

// Get returns the loaded configuration.
func Get() *Config {
	if cfg == nil {
		log.Fatal("Configuration not loaded. Call Load() first")
	}
	return cfg
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

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
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

func validate() error {
	switch cfg.Session.StoreType {
	case "memory", "redis":
	default:
		return fmt.Errorf("unsupported session store type: %s", cfg.Session.StoreType)
	}

	if cfg.Session.StoreType == "redis" && cfg.Session.RedisURL == "" {
		return fmt.Errorf("redis session store requires REDIS_URL")
	}

	if cfg.Session.TTL <= 0 {
		return fmt.Errorf("session TTL must be positive")
	}

	if cfg.Database.Enabled && cfg.Database.URI == "" {
		if cfg.Database.Host == "" || cfg.Database.Port == "" {
			return fmt.Errorf("database URI or host/port must be provided")
		}
	}

	return nil
}

// BuildDatabaseURI constructs the database URI if not provided.
func (c *Config) BuildDatabaseURI() string {
	if c.Database.URI != "" {
		return c.Database.URI
	}

	if c.Database.Username != "" && c.Database.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s",
			c.Database.Username,
			c.Database.Password,
			c.Database.Host,
			c.Database.Port,
			c.Database.Name,
		)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}
