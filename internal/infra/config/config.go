package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendTelegram = "telegram"
	BackendDiscord  = "discord"

	defaultEndpoint      = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	defaultRetryInterval = 600 * time.Second
)

// ErrMissingCredential is returned when a required credential is not set.
var ErrMissingCredential = errors.New("required environment variable is not set")

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken string
	ChatBackend    string // telegram or discord
	BotToken       string
	ChatID         string // Telegram chat ID or Discord channel ID

	Endpoint        string
	RetryInterval   time.Duration
	RequestTimeout  time.Duration // 0 means no timeout
	InitialFromDate int64

	// NotifyOnNoNewStatus sends the "no new status" message to chat instead of only logging it.
	NotifyOnNoNewStatus bool

	LogLevel    string
	Environment string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	if cfg.PracticumToken, err = required("PRACTICUM_TOKEN"); err != nil {
		return nil, err
	}

	cfg.ChatBackend = strings.ToLower(os.Getenv("CHAT_BACKEND"))
	if cfg.ChatBackend == "" {
		cfg.ChatBackend = BackendTelegram
	}
	switch cfg.ChatBackend {
	case BackendTelegram:
		if cfg.BotToken, err = required("TELEGRAM_TOKEN"); err != nil {
			return nil, err
		}
		if cfg.ChatID, err = required("TELEGRAM_CHAT_ID"); err != nil {
			return nil, err
		}
	case BackendDiscord:
		if cfg.BotToken, err = required("DISCORD_TOKEN"); err != nil {
			return nil, err
		}
		if cfg.ChatID, err = required("DISCORD_CHANNEL_ID"); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid CHAT_BACKEND %q: want %s or %s", cfg.ChatBackend, BackendTelegram, BackendDiscord)
	}

	cfg.Endpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}

	cfg.RetryInterval, err = durationEnv("RETRY_INTERVAL", defaultRetryInterval)
	if err != nil {
		return nil, err
	}
	if cfg.RetryInterval <= 0 {
		return nil, fmt.Errorf("invalid RETRY_INTERVAL: must be positive, got %s", cfg.RetryInterval)
	}

	cfg.RequestTimeout, err = durationEnv("REQUEST_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}

	fromDateStr := os.Getenv("INITIAL_FROM_DATE")
	if fromDateStr == "" {
		cfg.InitialFromDate = time.Now().Unix()
	} else {
		cfg.InitialFromDate, err = strconv.ParseInt(fromDateStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid INITIAL_FROM_DATE: %w", err)
		}
	}

	if v := os.Getenv("NOTIFY_ON_NO_NEW_STATUS"); v != "" {
		cfg.NotifyOnNoNewStatus, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid NOTIFY_ON_NO_NEW_STATUS: %w", err)
		}
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}

func required(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingCredential, key)
	}
	return v, nil
}

// durationEnv accepts a Go duration ("10m") or a bare number of seconds ("600").
func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	if secs, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
