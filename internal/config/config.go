package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Line     LineConfig
	Database DatabaseConfig
	Admin    AdminConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// LineConfig holds the Messaging API credentials
type LineConfig struct {
	ChannelAccessToken string
	ChannelSecret      string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AdminConfig holds the shared authorization code checked by the bind
// command.
type AdminConfig struct {
	AuthCode string
}

func Load() (*Config, error) {
	// A missing .env is fine in deployment; real env vars take over.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.Line = LineConfig{
		ChannelAccessToken: getEnv("LINE_CHANNEL_ACCESS_TOKEN", ""),
		ChannelSecret:      getEnv("LINE_CHANNEL_SECRET", ""),
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "flos_attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.Admin = AdminConfig{
		AuthCode: getEnv("ADMIN_AUTH_CODE", "ADMIN-HBH012"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate reports all missing required variables at once so a broken
// deployment fails with the full list.
func (c *Config) Validate() error {
	var missing []string
	if c.Line.ChannelAccessToken == "" {
		missing = append(missing, "LINE_CHANNEL_ACCESS_TOKEN")
	}
	if c.Line.ChannelSecret == "" {
		missing = append(missing, "LINE_CHANNEL_SECRET")
	}
	if c.Database.Password == "" {
		missing = append(missing, "DB_PASSWORD")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
