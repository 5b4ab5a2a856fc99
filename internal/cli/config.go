package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const defaultServer = "http://localhost:8080"

func serverURL() string {
	if flagServer != "" {
		return strings.TrimRight(flagServer, "/")
	}
	if env := os.Getenv("ARENA_SERVER"); env != "" {
		return strings.TrimRight(env, "/")
	}
	return defaultServer
}

func tokenFilePath() (string, error) {
	if flagTokenFile != "" {
		return flagTokenFile, nil
	}
	if env := os.Getenv("ARENA_TOKEN_FILE"); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".arena", "token"), nil
}

// LoadToken resolves the session token from, in order: the --token flag,
// the ARENA_TOKEN environment variable, and the token file. An empty
// string means no token is available.
func LoadToken() string {
	if flagToken != "" {
		return flagToken
	}
	if env := os.Getenv("ARENA_TOKEN"); env != "" {
		return env
	}
	path, err := tokenFilePath()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SaveToken writes the session token to the token file, creating the
// parent directory if needed. An empty token removes the file.
func SaveToken(token string) error {
	path, err := tokenFilePath()
	if err != nil {
		return err
	}
	if token == "" {
		err := os.Remove(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token), 0o600)
}
