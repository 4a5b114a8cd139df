package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"TRIVIAZ_SOURCE", "TRIVIAZ_POOL_SIZE", "TRIVIAZ_PLAYER", "TRIVIAZ_CATEGORY", "TRIVIAZ_LOCALE"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, SourceOpenTDB, cfg.Source)
	assert.Equal(t, 20, cfg.PoolSize)
	assert.Equal(t, "player", cfg.Player)
	assert.Equal(t, 10*time.Second, cfg.OpenTDB.Timeout)
	assert.Equal(t, 3, cfg.LLM.Retry.MaxAttempts)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TRIVIAZ_SOURCE", "bank")
	t.Setenv("TRIVIAZ_POOL_SIZE", "12")
	t.Setenv("TRIVIAZ_PLAYER", "ada")
	t.Setenv("TRIVIAZ_CATEGORY", "Science")
	t.Setenv("TRIVIAZ_OPENTDB_RETRIES", "0")
	t.Setenv("TRIVIAZ_LLM_PROVIDER", "mock")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, SourceBank, cfg.Source)
	assert.Equal(t, 12, cfg.PoolSize)
	assert.Equal(t, "ada", cfg.Player)
	assert.Equal(t, "Science", cfg.Category)
	assert.Equal(t, 0, cfg.OpenTDB.Retries)
	assert.Equal(t, "mock", cfg.LLM.Provider)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("TRIVIAZ_POOL_SIZE", "3")
	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"unknown source", func(c *Config) { c.Source = "radio" }, true},
		{"pool below session length", func(c *Config) { c.PoolSize = 9 }, true},
		{"pool exactly session length", func(c *Config) { c.PoolSize = 10 }, false},
		{"pool above max", func(c *Config) { c.PoolSize = MaxPoolSize + 1 }, true},
		{"empty player", func(c *Config) { c.Player = "" }, true},
		{"file without path", func(c *Config) { c.Source = SourceFile }, true},
		{"file with path", func(c *Config) { c.Source = SourceFile; c.BankFile = "q.json" }, false},
		{"opentdb numeric category", func(c *Config) { c.Category = "9" }, false},
		{"opentdb named category", func(c *Config) { c.Category = "Science" }, true},
		{"bank named category", func(c *Config) { c.Source = SourceBank; c.Category = "Science" }, false},
		{"negative retries", func(c *Config) { c.OpenTDB.Retries = -1 }, true},
		{"bad locale", func(c *Config) { c.Locale = "not a locale!" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLanguage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Locale = "de-DE"
	tag, err := cfg.Language()
	require.NoError(t, err)
	base, _ := tag.Base()
	want, _ := language.German.Base()
	assert.Equal(t, want, base)
}
