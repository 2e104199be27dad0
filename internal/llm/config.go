package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of completion being requested.
type TaskType string

const (
	TaskVagueness TaskType = "vagueness"
	TaskQuestions TaskType = "questions"
	TaskChat      TaskType = "chat"
)

// TaskConfig holds per-task completion parameters.
type TaskConfig struct {
	MaxTokens int
	TimeoutMs int // overrides global if > 0
}

// Config holds all configuration for the completion backend.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	LogCalls  bool
	TimeoutMs int
	Tasks     map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults and no API key.
func DefaultConfig() Config {
	return Config{
		BaseURL:   "https://api.openai.com/v1",
		Model:     "gpt-4o-mini",
		TimeoutMs: 30000,
		Tasks: map[TaskType]TaskConfig{
			TaskVagueness: {MaxTokens: 10, TimeoutMs: 10000},
			TaskQuestions: {MaxTokens: 512, TimeoutMs: 30000},
			TaskChat:      {MaxTokens: 512, TimeoutMs: 30000},
		},
	}
}

// LoadConfig reads backend configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	if v := os.Getenv("FRONTDESK_LLM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("FRONTDESK_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("FRONTDESK_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("FRONTDESK_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("FRONTDESK_LLM_CHAT_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			tc := cfg.Tasks[TaskChat]
			tc.MaxTokens = n
			cfg.Tasks[TaskChat] = tc
		}
	}

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

// TaskMaxTokens returns the token budget for a given task type.
func (c Config) TaskMaxTokens(task TaskType) int {
	return c.Tasks[task].MaxTokens
}
