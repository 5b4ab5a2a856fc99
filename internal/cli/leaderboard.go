package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var flagMode string

type leaderboardPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Score    int    `json:"score"`
	Mode     string `json:"mode"`
	PlayedAt string `json:"playedAt"`
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show ranked scores",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/api/leaderboard"
		if flagMode != "" {
			path += "?mode=" + flagMode
		}

		c := newClient()
		env, err := c.get(path)
		if err != nil {
			return err
		}

		var entries []leaderboardPayload
		if err := json.Unmarshal(env.Data, &entries); err != nil {
			return err
		}

		if jsonOutput() {
			return printJSON(entries)
		}
		if len(entries) == 0 {
			fmt.Println("No scores yet")
			return nil
		}
		for i, entry := range entries {
			fmt.Printf("%3d. %-16s %6d  %-12s %s\n", i+1, entry.Username, entry.Score, entry.Mode, entry.PlayedAt)
		}
		return nil
	},
}

var submitCmd = &cobra.Command{
	Use:   "submit <score>",
	Short: "Submit a score for the logged-in account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("score must be an integer: %w", err)
		}
		mode := flagMode
		if mode == "" {
			mode = "walls"
		}

		c := newClient()
		env, _, err := c.post("/api/scores", map[string]any{
			"score": score,
			"mode":  mode,
		})
		if err != nil {
			return err
		}

		var entry leaderboardPayload
		if err := json.Unmarshal(env.Data, &entry); err != nil {
			return err
		}
		if jsonOutput() {
			return printJSON(entry)
		}
		fmt.Printf("Recorded %d (%s) for %s\n", entry.Score, entry.Mode, entry.Username)
		return nil
	},
}

func init() {
	leaderboardCmd.Flags().StringVarP(&flagMode, "mode", "m", "", "filter by game mode (walls or pass-through)")
	submitCmd.Flags().StringVarP(&flagMode, "mode", "m", "", "game mode (default walls)")
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(submitCmd)
}
