package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/kontinentkm/SaveItBot/pkg/logger"
)

const defaultDownloadTimeout = 120 // seconds

// Config is read once at startup and treated as read-only afterwards.
type Config struct {
	BotToken        string
	CookiesFile     string
	DownloadTimeout time.Duration
	OwnerID         int64
	WebhookAddr     string
	LogLevel        string
}

// Load reads a .env file if present, then the environment. The cookies path
// is resolved and silently dropped when the file does not exist, so a stale
// IG_COOKIES_FILE never breaks downloads that work anonymously.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:        os.Getenv("BOT_TOKEN"),
		CookiesFile:     resolveCookiesFile(os.Getenv("IG_COOKIES_FILE")),
		DownloadTimeout: time.Duration(getEnvInt("DOWNLOAD_TIMEOUT", defaultDownloadTimeout)) * time.Second,
		OwnerID:         getEnvInt64("OWNER_ID", 0),
		WebhookAddr:     getEnv("WEBHOOK_ADDR", ":8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
	return cfg, nil
}

// Validate checks the parts the polling daemon cannot run without.
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is not set")
	}
	return nil
}

func resolveCookiesFile(path string) string {
	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if _, err := os.Stat(path); err != nil {
		logger.Warn("cookies file not found, continuing without auth", "path", path)
		return ""
	}
	return path
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt falls back to the default on empty and on non-integer values.
func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		logger.Warn("invalid integer in environment, using default", "key", key, "value", raw, "default", defaultValue)
		return defaultValue
	}
	return value
}

func getEnvInt64(key string, defaultValue int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.Warn("invalid integer in environment, using default", "key", key, "value", raw, "default", defaultValue)
		return defaultValue
	}
	return value
}
