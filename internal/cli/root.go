package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagServer    string
	flagToken     string
	flagTokenFile string
	flagOutput    string
)

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Command-line client for the snake arena server",
	Long: `arena talks to a running snake arena server over its HTTP API.

It can sign up and log in, submit scores, and inspect the leaderboard
and live player snapshots. The session token obtained on login is kept
in a token file so subsequent commands stay authenticated.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagServer, "server", "s", "", "server base URL (default http://localhost:8080, env ARENA_SERVER)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "session token (env ARENA_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&flagTokenFile, "token-file", "", "path to the session token file (env ARENA_TOKEN_FILE)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "output format: text or json")
}
