package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flagPassword string

type userPayload struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	HighScore int    `json:"highScore"`
	CreatedAt string `json:"createdAt"`
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Sign up, log in, and inspect the current account",
}

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Log in and store the session token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := resolvePassword()
		if err != nil {
			return err
		}

		c := newClient()
		env, token, err := c.post("/api/auth/login", map[string]string{
			"email":    args[0],
			"password": password,
		})
		if err != nil {
			return err
		}

		if token != "" {
			if err := SaveToken(token); err != nil {
				return fmt.Errorf("failed to save session token: %w", err)
			}
		}

		return printUser(env.User, "Logged in as")
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup <email> <username>",
	Short: "Create an account and store the session token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := resolvePassword()
		if err != nil {
			return err
		}

		c := newClient()
		env, token, err := c.post("/api/auth/signup", map[string]string{
			"email":    args[0],
			"username": args[1],
			"password": password,
		})
		if err != nil {
			return err
		}

		if token != "" {
			if err := SaveToken(token); err != nil {
				return fmt.Errorf("failed to save session token: %w", err)
			}
		}

		return printUser(env.User, "Signed up as")
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Revoke the current session and remove the stored token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		if _, _, err := c.post("/api/auth/logout", nil); err != nil {
			return err
		}
		if err := SaveToken(""); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the account for the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		env, err := c.get("/api/auth/me")
		if err != nil {
			return err
		}
		if len(env.Data) == 0 || string(env.Data) == "null" {
			fmt.Println("Not logged in")
			return nil
		}
		return printUser(env.Data, "Logged in as")
	},
}

func printUser(raw json.RawMessage, prefix string) error {
	var user userPayload
	if err := json.Unmarshal(raw, &user); err != nil {
		return err
	}
	if jsonOutput() {
		return printJSON(user)
	}
	fmt.Printf("%s %s <%s> (high score %d)\n", prefix, user.Username, user.Email, user.HighScore)
	return nil
}

// resolvePassword takes the password from --password, the ARENA_PASSWORD
// environment variable, or an interactive prompt on stdin
func resolvePassword() (string, error) {
	if flagPassword != "" {
		return flagPassword, nil
	}
	if env := os.Getenv("ARENA_PASSWORD"); env != "" {
		return env, nil
	}
	fmt.Print("Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func init() {
	for _, cmd := range []*cobra.Command{loginCmd, signupCmd} {
		cmd.Flags().StringVarP(&flagPassword, "password", "p", "", "account password (env ARENA_PASSWORD; prompted if unset)")
	}
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(signupCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(authCmd)
}
