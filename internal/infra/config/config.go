package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Names of the required credential variables, in the fixed order they are
// reported when missing: API token, bot token, chat id.
const (
	EnvPracticumToken = "PRACTICUM_TOKEN"
	EnvTelegramToken  = "TELEGRAM_TOKEN"
	EnvTelegramChatID = "TELEGRAM_CHAT_ID"
)

const defaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// ErrMissingVariables distinguishes a startup abort caused by absent
// credentials from any other setup failure.
var ErrMissingVariables = errors.New("required environment variables are missing")

// AppConfig holds all configuration for the application.
type AppConfig struct {
	PracticumToken    string
	TelegramToken     string
	TelegramChatID    string
	Endpoint          string
	PollInterval      time.Duration
	HeartbeatCronSpec string
	LogLevel          string
	Environment       string
}

// Load reads configuration from environment variables and .env file (if present).
// Absence of the three credential variables is deliberately not an error here:
// CheckTokens reports all missing ones together before the loop starts.
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.PracticumToken = os.Getenv(EnvPracticumToken)
	cfg.TelegramToken = os.Getenv(EnvTelegramToken)
	cfg.TelegramChatID = os.Getenv(EnvTelegramChatID)

	cfg.Endpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}

	intervalStr := os.Getenv("POLL_INTERVAL_SECONDS")
	if intervalStr == "" {
		cfg.PollInterval = 600 * time.Second
	} else {
		seconds, err := strconv.Atoi(intervalStr)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid POLL_INTERVAL_SECONDS: %q", intervalStr)
		}
		cfg.PollInterval = time.Duration(seconds) * time.Second
	}

	cfg.HeartbeatCronSpec = os.Getenv("HEARTBEAT_CRON_SPEC")
	if cfg.HeartbeatCronSpec == "" {
		cfg.HeartbeatCronSpec = "0 9 * * *" // Default: 9:00 AM daily
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	return cfg, nil
}

// MissingVars returns the names of required credential variables that are
// empty, in fixed order.
func (c *AppConfig) MissingVars() []string {
	var missing []string
	for _, v := range []struct {
		name  string
		value string
	}{
		{EnvPracticumToken, c.PracticumToken},
		{EnvTelegramToken, c.TelegramToken},
		{EnvTelegramChatID, c.TelegramChatID},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	return missing
}

// CheckTokens reports whether all required credentials are present. When any
// are missing it emits a single critical-level line naming them; the caller
// decides to abort.
func (c *AppConfig) CheckTokens(log *logrus.Logger) bool {
	missing := c.MissingVars()
	if len(missing) > 0 {
		log.Logf(logrus.FatalLevel, "Required environment variables are missing: %s. Startup aborted.", strings.Join(missing, ", "))
		return false
	}
	return true
}
