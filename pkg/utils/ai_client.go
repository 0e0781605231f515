package utils

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"
)

// FeedbackClientInterface is the completion service boundary for feedback
// synthesis. Implementations return the raw text of the model reply; callers
// are responsible for parsing it defensively.
type FeedbackClientInterface interface {
	GenerateFeedbackJSON(ctx context.Context, prompt string) (string, error)
}

// AIConfig carries everything the synthesis path needs to reach the
// completion service. Other request paths do not depend on it.
type AIConfig struct {
	Provider string // "openai" (OpenAI-compatible, e.g. Groq) or "gemini"
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

const (
	defaultBaseURL        = "https://api.groq.com/openai/v1"
	defaultOpenAIModel    = "llama3-70b-8192"
	defaultGeminiModel    = "gemini-1.5-flash"
	defaultTimeoutSeconds = 30
)

// LoadAIConfigFromEnv reads the completion service settings. The timeout is
// explicit and configurable; there is no retry policy, a failed call falls
// through to the caller's fallback.
func LoadAIConfigFromEnv() AIConfig {
	cfg := AIConfig{
		Provider: os.Getenv("AI_PROVIDER"),
		APIKey:   os.Getenv("AI_API_KEY"),
		BaseURL:  os.Getenv("AI_BASE_URL"),
		Model:    os.Getenv("AI_MODEL"),
		Timeout:  defaultTimeoutSeconds * time.Second,
	}
	if cfg.Provider == "" {
		cfg.Provider = "openai"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		if cfg.Provider == "gemini" {
			cfg.Model = defaultGeminiModel
		} else {
			cfg.Model = defaultOpenAIModel
		}
	}
	if raw := os.Getenv("AI_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}
	return cfg
}

// NewFeedbackClient constructs the configured provider. A missing API key
// fails here, at composition time, so only the synthesis path depends on it.
func NewFeedbackClient(cfg AIConfig) (FeedbackClientInterface, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("AI_API_KEY is required for feedback synthesis")
	}
	switch cfg.Provider {
	case "gemini":
		return NewGeminiFeedbackClient(cfg)
	case "openai":
		return NewOpenAIFeedbackClient(cfg), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}
