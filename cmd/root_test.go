package cmd

import (
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flagCmd mirrors the root command's persistent flags.
func flagCmd(t *testing.T, flags map[string]string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	for _, name := range []string{"db", "source", "category", "player", "bank-file"} {
		c.Flags().String(name, "", "")
	}
	for k, v := range flags {
		require.NoError(t, c.Flags().Set(k, v))
	}
	return c
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("TRIVIAZ_SOURCE", "opentdb")
	t.Setenv("TRIVIAZ_PLAYER", "ada")

	cfg, err := loadConfig(flagCmd(t, map[string]string{"source": "bank", "category": "Science"}))
	require.NoError(t, err)
	assert.Equal(t, "bank", cfg.Source)
	assert.Equal(t, "Science", cfg.Category)
	assert.Equal(t, "ada", cfg.Player, "unset flags keep the env value")
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := loadConfig(flagCmd(t, map[string]string{"source": "carrier-pigeon"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadConfig_FileSourceNeedsPath(t *testing.T) {
	_, err := loadConfig(flagCmd(t, map[string]string{"source": "file"}))
	require.Error(t, err)

	cfg, err := loadConfig(flagCmd(t, map[string]string{"source": "file", "bank-file": "q.json"}))
	require.NoError(t, err)
	assert.Equal(t, "q.json", cfg.BankFile)
}

func TestResolveDBPath(t *testing.T) {
	dir := t.TempDir()
	fromEnv := filepath.Join(dir, "env", "events.db")
	fromFlag := filepath.Join(dir, "flag", "events.db")
	t.Setenv("TRIVIAZ_DB", fromEnv)

	got, err := resolveDBPath(flagCmd(t, nil))
	require.NoError(t, err)
	assert.Equal(t, fromEnv, got)
	assert.DirExists(t, filepath.Dir(fromEnv))

	got, err = resolveDBPath(flagCmd(t, map[string]string{"db": fromFlag}))
	require.NoError(t, err)
	assert.Equal(t, fromFlag, got)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Pokém", truncate("Pokémon", 5))
}

func TestVersionString(t *testing.T) {
	tests := []struct {
		name   string
		linked string
		info   *debug.BuildInfo
		want   string
	}{
		{"linker wins", "v1.2.0", &debug.BuildInfo{Main: debug.Module{Version: "v1.1.0"}}, "triviaz v1.2.0 "},
		{"module version", "", &debug.BuildInfo{Main: debug.Module{Version: "v1.1.0"}}, "triviaz v1.1.0 "},
		{"vcs revision", "", &debug.BuildInfo{
			Main:     debug.Module{Version: "(devel)"},
			Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef0123"}},
		}, "triviaz devel-0123456789ab "},
		{"nothing known", "", nil, "triviaz (devel) "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := versionString(tt.linked, tt.info)
			assert.True(t, strings.HasPrefix(got, tt.want), got)
			assert.Contains(t, got, runtime.Version())
		})
	}
}
