package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	GameFile  string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("REVERSI_SERVER", "http://localhost:8080"),
		GameFile:  getEnvOrDefault("REVERSI_GAME_FILE", defaultGameFile()),
		Output:    "text",
		Verbose:   false,
	}
}

// LocalGame is the game in progress kept between CLI invocations. The API
// is stateless, so the CLI owns the board and whose turn it is.
type LocalGame struct {
	Board [][]int `json:"board"`
	Turn  int     `json:"turn"`
}

// errNoGame is returned when the game file does not exist yet
var errNoGame = errors.New("no game in progress; run 'reversi game new' first")

// LoadGame reads the game file
func (c *Config) LoadGame() (*LocalGame, error) {
	data, err := os.ReadFile(c.GameFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errNoGame
		}
		return nil, err
	}

	var g LocalGame
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("corrupt game file %s: %w", c.GameFile, err)
	}
	return &g, nil
}

// SaveGame writes the game file
func (c *Config) SaveGame(g *LocalGame) error {
	dir := filepath.Dir(c.GameFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := json.Marshal(g)
	if err != nil {
		return err
	}
	return os.WriteFile(c.GameFile, data, 0600)
}

func defaultGameFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".reversi/game.json"
	}
	return filepath.Join(home, ".reversi", "game.json")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
