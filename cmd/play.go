package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	RunE: func(cmd *cobra.Command, args []string) error {
		skipSplash, _ := cmd.Flags().GetBool("no-splash")
		return runApp(cmd, skipSplash)
	},
}

func init() {
	playCmd.Flags().Bool("no-splash", false, "Skip the intro animation")
}
