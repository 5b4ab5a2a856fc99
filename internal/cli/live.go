package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

type positionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type livePlayerPayload struct {
	ID        string            `json:"id"`
	Username  string            `json:"username"`
	Score     int               `json:"score"`
	Mode      string            `json:"mode"`
	Snake     []positionPayload `json:"snake"`
	Food      positionPayload   `json:"food"`
	Direction string            `json:"direction"`
	IsPlaying bool              `json:"isPlaying"`
}

var liveCmd = &cobra.Command{
	Use:   "live [id]",
	Short: "Show live player snapshots",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()

		if len(args) == 1 {
			env, err := c.get("/api/live-players/" + args[0])
			if err != nil {
				return err
			}
			if len(env.Data) == 0 || string(env.Data) == "null" {
				fmt.Println("No such live player")
				return nil
			}
			var player livePlayerPayload
			if err := json.Unmarshal(env.Data, &player); err != nil {
				return err
			}
			if jsonOutput() {
				return printJSON(player)
			}
			printLivePlayer(player)
			return nil
		}

		env, err := c.get("/api/live-players")
		if err != nil {
			return err
		}
		var players []livePlayerPayload
		if err := json.Unmarshal(env.Data, &players); err != nil {
			return err
		}
		if jsonOutput() {
			return printJSON(players)
		}
		if len(players) == 0 {
			fmt.Println("Nobody is playing right now")
			return nil
		}
		for _, player := range players {
			printLivePlayer(player)
		}
		return nil
	},
}

func printLivePlayer(p livePlayerPayload) {
	state := "playing"
	if !p.IsPlaying {
		state = "idle"
	}
	fmt.Printf("%-8s %-16s %5d  %-12s length %d, heading %s (%s)\n",
		p.ID, p.Username, p.Score, p.Mode, len(p.Snake), p.Direction, state)
}

func init() {
	rootCmd.AddCommand(liveCmd)
}
