// Package config loads triviaz settings from TRIVIAZ_* environment variables.
package config

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"github.com/abhisek/triviaz/internal/llm"
	"github.com/abhisek/triviaz/internal/session"
)

// Question source names accepted in Config.Source.
const (
	SourceOpenTDB = "opentdb"
	SourceBank    = "bank"
	SourceFile    = "file"
	SourceLLM     = "llm"
)

// MaxPoolSize caps how many questions are requested per session.
const MaxPoolSize = 50

// Sources lists the valid source names.
func Sources() []string {
	return []string{SourceOpenTDB, SourceBank, SourceFile, SourceLLM}
}

// Config is the full runtime configuration.
type Config struct {
	// DBPath overrides the event database location. Empty means the
	// platform default.
	DBPath string `env:"TRIVIAZ_DB"`

	Player   string `env:"TRIVIAZ_PLAYER"`
	Source   string `env:"TRIVIAZ_SOURCE"`
	Category string `env:"TRIVIAZ_CATEGORY"`
	BankFile string `env:"TRIVIAZ_BANK_FILE"`
	Locale   string `env:"TRIVIAZ_LOCALE"`

	// PoolSize is how many questions a source is asked for. The sequencer
	// needs at least session.Length of them.
	PoolSize int `env:"TRIVIAZ_POOL_SIZE"`

	OpenTDB OpenTDBConfig
	LLM     llm.Config
}

// OpenTDBConfig configures the Open Trivia Database client.
type OpenTDBConfig struct {
	BaseURL string        `env:"TRIVIAZ_OPENTDB_URL"`
	Timeout time.Duration `env:"TRIVIAZ_OPENTDB_TIMEOUT"`
	Retries int           `env:"TRIVIAZ_OPENTDB_RETRIES"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Player:   "player",
		Source:   SourceOpenTDB,
		Locale:   "en",
		PoolSize: 20,
		OpenTDB: OpenTDBConfig{
			BaseURL: "https://opentdb.com/api.php",
			Timeout: 10 * time.Second,
			Retries: 2,
		},
		LLM: llm.DefaultConfig(),
	}
}

// FromEnv overlays the environment on DefaultConfig without validating,
// so callers can apply further overrides first.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Load overlays the environment on DefaultConfig and validates the result.
func Load() (Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges and cross-field requirements. LLM settings
// are validated lazily, only when the llm source is selected and built.
func (c Config) Validate() error {
	if !slices.Contains(Sources(), c.Source) {
		return fmt.Errorf("unknown question source %q (want one of %v)", c.Source, Sources())
	}
	if c.PoolSize < session.Length || c.PoolSize > MaxPoolSize {
		return fmt.Errorf("pool size must be between %d and %d, got %d", session.Length, MaxPoolSize, c.PoolSize)
	}
	if c.Player == "" {
		return fmt.Errorf("player name is required")
	}
	if c.Source == SourceFile && c.BankFile == "" {
		return fmt.Errorf("TRIVIAZ_BANK_FILE is required for the file source")
	}
	if c.Source == SourceOpenTDB && c.Category != "" {
		if _, err := strconv.Atoi(c.Category); err != nil {
			return fmt.Errorf("opentdb category must be a numeric id, got %q", c.Category)
		}
	}
	if c.OpenTDB.Retries < 0 {
		return fmt.Errorf("opentdb retries must not be negative, got %d", c.OpenTDB.Retries)
	}
	if _, err := c.Language(); err != nil {
		return err
	}
	return nil
}

// Language parses the configured locale.
func (c Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("parse locale %q: %w", c.Locale, err)
	}
	return tag, nil
}
