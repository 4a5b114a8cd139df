package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/triviaz/internal/config"
	"github.com/abhisek/triviaz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "triviaz",
	Short: "Adaptive trivia quiz for the terminal",
	Long: `Triviaz is a ten-question trivia game that adapts to you: answer two in a
row correctly and the questions get harder, miss two and they ease off.
Streaks of three or more score double.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TRIVIAZ_DB env var)")
	rootCmd.PersistentFlags().String("source", "", "Question source: opentdb, bank, file or llm (overrides TRIVIAZ_SOURCE)")
	rootCmd.PersistentFlags().String("category", "", "Question category (overrides TRIVIAZ_CATEGORY)")
	rootCmd.PersistentFlags().String("player", "", "Player name (overrides TRIVIAZ_PLAYER)")
	rootCmd.PersistentFlags().String("bank-file", "", "JSON question file for the file source (overrides TRIVIAZ_BANK_FILE)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment, applies command-line overrides and
// validates the result.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}

	overrides := map[string]*string{
		"source":    &cfg.Source,
		"category":  &cfg.Category,
		"player":    &cfg.Player,
		"bank-file": &cfg.BankFile,
	}
	for name, field := range overrides {
		if v, _ := cmd.Flags().GetString(name); v != "" {
			*field = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TRIVIAZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	p, _ := cmd.Flags().GetString("db")
	if p == "" {
		cfg, err := config.FromEnv()
		if err != nil {
			return "", err
		}
		p = cfg.DBPath
	}
	if p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the event store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
