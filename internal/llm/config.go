package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	// TaskShotDraft asks for a structured shot-list draft (JSON array).
	TaskShotDraft TaskType = "shot_draft"

	// TaskOverviewDraft asks for free-text overview/objectives copy.
	TaskOverviewDraft TaskType = "overview_draft"

	// TaskBudgetDraft asks for a structured budget breakdown draft.
	TaskBudgetDraft TaskType = "budget_draft"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the generation subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults.
// Generation is disabled by default.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  10000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskShotDraft:     {Temperature: 0.3, MaxTokens: 2048, TimeoutMs: 20000},
			TaskOverviewDraft: {Temperature: 0.5, MaxTokens: 1024, TimeoutMs: 10000},
			TaskBudgetDraft:   {Temperature: 0.2, MaxTokens: 2048, TimeoutMs: 20000},
		},
	}
}

// LoadConfig reads generation configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("BRIEFER_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("BRIEFER_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("BRIEFER_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("BRIEFER_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("BRIEFER_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("BRIEFER_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskShotDraft, "BRIEFER_LLM_SHOT_DRAFT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskOverviewDraft, "BRIEFER_LLM_OVERVIEW_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskBudgetDraft, "BRIEFER_LLM_BUDGET_DRAFT_TIMEOUT_MS")

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

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
