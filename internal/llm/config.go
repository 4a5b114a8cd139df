package llm

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// ErrNotConfigured is returned when no provider is selected and no API key
// could be discovered.
var ErrNotConfigured = errors.New("no LLM provider configured")

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use. Empty means discover one
	// from the standard API key variables.
	Provider string `env:"TRIVIAZ_LLM_PROVIDER"`

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration `env:"TRIVIAZ_LLM_TIMEOUT"`
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string `env:"TRIVIAZ_ANTHROPIC_API_KEY"`
	Model  string `env:"TRIVIAZ_ANTHROPIC_MODEL"`
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string `env:"TRIVIAZ_OPENAI_API_KEY"`
	Model   string `env:"TRIVIAZ_OPENAI_MODEL"`
	BaseURL string `env:"TRIVIAZ_OPENAI_BASE_URL"` // any OpenAI-compatible API
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string `env:"TRIVIAZ_GEMINI_API_KEY"`
	Model  string `env:"TRIVIAZ_GEMINI_MODEL"`
}

// OpenRouterConfig holds OpenRouter configuration. OpenRouter speaks the
// OpenAI API, so it is served by OpenAIProvider.
type OpenRouterConfig struct {
	APIKey  string `env:"TRIVIAZ_OPENROUTER_API_KEY"`
	Model   string `env:"TRIVIAZ_OPENROUTER_MODEL"`
	BaseURL string `env:"TRIVIAZ_OPENROUTER_BASE_URL"`
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int           `env:"TRIVIAZ_LLM_MAX_ATTEMPTS"`
	InitialWait time.Duration `env:"TRIVIAZ_LLM_INITIAL_WAIT"`
	MaxWait     time.Duration `env:"TRIVIAZ_LLM_MAX_WAIT"`
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model:   "google/gemini-2.0-flash-001",
			BaseURL: defaultOpenRouterBaseURL,
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv overlays TRIVIAZ_* environment variables on DefaultConfig.
// Unset variables keep their defaults.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse LLM env: %w", err)
	}
	return cfg, nil
}

// standardKeys are the vendor API key variables probed by DiscoverConfig.
type standardKeys struct {
	Gemini     string `env:"GEMINI_API_KEY"`
	OpenAI     string `env:"OPENAI_API_KEY"`
	Anthropic  string `env:"ANTHROPIC_API_KEY"`
	OpenRouter string `env:"OPENROUTER_API_KEY"`
}

// DiscoverConfig probes the vendors' standard API key variables in priority
// order (Gemini, OpenAI, Anthropic, OpenRouter) and fills in the first one
// found. It reports false when none is set.
func DiscoverConfig(base Config) (Config, bool) {
	keys, err := env.ParseAs[standardKeys]()
	if err != nil {
		return base, false
	}

	cfg := base
	switch {
	case keys.Gemini != "":
		cfg.Provider = ProviderGemini
		cfg.Gemini.APIKey = keys.Gemini
	case keys.OpenAI != "":
		cfg.Provider = ProviderOpenAI
		cfg.OpenAI.APIKey = keys.OpenAI
	case keys.Anthropic != "":
		cfg.Provider = ProviderAnthropic
		cfg.Anthropic.APIKey = keys.Anthropic
	case keys.OpenRouter != "":
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = keys.OpenRouter
	default:
		return base, false
	}
	return cfg, true
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("TRIVIAZ_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("TRIVIAZ_OPENAI_API_KEY is required for the openai provider")
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("TRIVIAZ_GEMINI_API_KEY is required for the gemini provider")
		}
	case ProviderOpenRouter:
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("TRIVIAZ_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case ProviderMock:
	case "":
		return ErrNotConfigured
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry max attempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}
	return nil
}
