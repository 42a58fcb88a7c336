package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAdminHeader carries the admin password on listing requests
const DefaultAdminHeader = "X-Admin-Password"

// Config holds the bot configuration
type Config struct {
	BotToken  string
	Endpoints EndpointsConfig
}

// EndpointsConfig holds the remote endpoints the bot talks to
type EndpointsConfig struct {
	SubmitURL   string
	AuthURL     string
	ListURL     string
	AdminHeader string
	Timeout     time.Duration
}

// APIConfig holds the response backend configuration
type APIConfig struct {
	ListenAddr        string
	AdminPasswordHash string
	AdminHeader       string
	Database          DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string

	// ConnectAttempts and ConnectDelay bound the wait for the server at startup
	ConnectAttempts int
	ConnectDelay    time.Duration
	MigrationsURL   string
}

// Load reads the bot configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	baseURL := strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8080/api"), "/")

	timeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		Endpoints: EndpointsConfig{
			SubmitURL:   getEnv("SUBMIT_URL", baseURL+"/responses"),
			AuthURL:     getEnv("AUTH_URL", baseURL+"/admin/login"),
			ListURL:     getEnv("LIST_URL", baseURL+"/admin/responses"),
			AdminHeader: getEnv("ADMIN_HEADER", DefaultAdminHeader),
			Timeout:     timeout,
		},
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}

	return cfg, nil
}

// LoadAPI reads the backend configuration from environment variables
func LoadAPI() (*APIConfig, error) {
	_ = godotenv.Load()

	attempts, err := strconv.Atoi(getEnv("DB_CONNECT_ATTEMPTS", "15"))
	if err != nil || attempts < 1 {
		return nil, fmt.Errorf("invalid DB_CONNECT_ATTEMPTS: must be a positive integer")
	}
	delay, err := time.ParseDuration(getEnv("DB_CONNECT_DELAY", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONNECT_DELAY: %w", err)
	}

	cfg := &APIConfig{
		ListenAddr:        getEnv("LISTEN_ADDR", ":8080"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminHeader:       getEnv("ADMIN_HEADER", DefaultAdminHeader),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "survey"),
			User:     getEnv("DB_USER", "survey"),
			Password: os.Getenv("DB_PASSWORD"),

			ConnectAttempts: attempts,
			ConnectDelay:    delay,
			MigrationsURL:   getEnv("MIGRATIONS_URL", "file://migrations"),
		},
	}

	if cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *APIConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
