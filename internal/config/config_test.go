package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "set", value: "X-Survey-Key", expected: "X-Survey-Key"},
		{name: "blank falls back", value: "", expected: DefaultAdminHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ADMIN_HEADER", tt.value)
			assert.Equal(t, tt.expected, getEnv("ADMIN_HEADER", DefaultAdminHeader))
		})
	}
}

// clearBotEnv blanks every variable Load reads so defaults apply
func clearBotEnv(t *testing.T) {
	for _, key := range []string{
		"BOT_TOKEN", "API_BASE_URL", "SUBMIT_URL", "AUTH_URL",
		"LIST_URL", "ADMIN_HEADER", "HTTP_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func clearAPIEnv(t *testing.T) {
	for _, key := range []string{
		"LISTEN_ADDR", "ADMIN_PASSWORD_HASH", "ADMIN_HEADER",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
		"DB_CONNECT_ATTEMPTS", "DB_CONNECT_DELAY", "MIGRATIONS_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_MissingBotToken(t *testing.T) {
	clearBotEnv(t)

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_WithDefaults(t *testing.T) {
	clearBotEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "http://localhost:8080/api/responses", cfg.Endpoints.SubmitURL)
	assert.Equal(t, "http://localhost:8080/api/admin/login", cfg.Endpoints.AuthURL)
	assert.Equal(t, "http://localhost:8080/api/admin/responses", cfg.Endpoints.ListURL)
	assert.Equal(t, DefaultAdminHeader, cfg.Endpoints.AdminHeader)
	assert.Equal(t, 10*time.Second, cfg.Endpoints.Timeout)
}

func TestLoad_Overrides(t *testing.T) {
	clearBotEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("API_BASE_URL", "https://survey.example.com/v1/")
	t.Setenv("AUTH_URL", "https://auth.example.com/check")
	t.Setenv("HTTP_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://survey.example.com/v1/responses", cfg.Endpoints.SubmitURL)
	assert.Equal(t, "https://auth.example.com/check", cfg.Endpoints.AuthURL)
	assert.Equal(t, 3*time.Second, cfg.Endpoints.Timeout)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	clearBotEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("HTTP_TIMEOUT", "soon")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "HTTP_TIMEOUT")
}

func TestLoadAPI_MissingRequiredFields(t *testing.T) {
	clearAPIEnv(t)

	cfg, err := LoadAPI()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "ADMIN_PASSWORD_HASH")

	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$hash")

	cfg, err = LoadAPI()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestLoadAPI_WithDefaults(t *testing.T) {
	clearAPIEnv(t)
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$hash")
	t.Setenv("DB_PASSWORD", "test_db_password")

	cfg, err := LoadAPI()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, DefaultAdminHeader, cfg.AdminHeader)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "survey", cfg.Database.Name)
	assert.Equal(t, "survey", cfg.Database.User)
	assert.Equal(t, 15, cfg.Database.ConnectAttempts)
	assert.Equal(t, time.Second, cfg.Database.ConnectDelay)
	assert.Equal(t, "file://migrations", cfg.Database.MigrationsURL)
}

func TestLoadAPI_ConnectSettings(t *testing.T) {
	tests := []struct {
		name     string
		attempts string
		delay    string
		expected int
		wait     time.Duration
		errField string
	}{
		{
			name:     "overrides",
			attempts: "3",
			delay:    "250ms",
			expected: 3,
			wait:     250 * time.Millisecond,
		},
		{
			name:     "attempts not a number",
			attempts: "many",
			errField: "DB_CONNECT_ATTEMPTS",
		},
		{
			name:     "zero attempts",
			attempts: "0",
			errField: "DB_CONNECT_ATTEMPTS",
		},
		{
			name:     "bad delay",
			delay:    "later",
			errField: "DB_CONNECT_DELAY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearAPIEnv(t)
			t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$hash")
			t.Setenv("DB_PASSWORD", "test_db_password")
			t.Setenv("DB_CONNECT_ATTEMPTS", tt.attempts)
			t.Setenv("DB_CONNECT_DELAY", tt.delay)

			cfg, err := LoadAPI()

			if tt.errField != "" {
				assert.Nil(t, cfg)
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errField)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Database.ConnectAttempts)
			assert.Equal(t, tt.wait, cfg.Database.ConnectDelay)
		})
	}
}

func TestAPIConfig_DSN(t *testing.T) {
	cfg := &APIConfig{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}
