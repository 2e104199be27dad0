package sentiment

import (
	"os"
	"strconv"
	"strings"
)

// UnknownLabel is the label used whenever a prediction is unavailable.
const UnknownLabel = "unknown"

// Config holds sentiment service settings.
type Config struct {
	Enabled   bool
	BaseURL   string
	TimeoutMs int
}

// DefaultConfig returns the settings for a local sentiment service.
func DefaultConfig() Config {
	return Config{
		Enabled:   true,
		BaseURL:   "http://localhost:8000/sent",
		TimeoutMs: 3000,
	}
}

// LoadConfig reads FRONTDESK_SENTIMENT_* variables over the defaults.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("FRONTDESK_SENTIMENT_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = b
		}
	}
	if v := os.Getenv("FRONTDESK_SENTIMENT_URL"); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("FRONTDESK_SENTIMENT_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	return cfg
}
