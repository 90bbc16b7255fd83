package config

import (
	"flag"
	"fmt"
)

// Default values for configuration
const (
	DefaultOpponent = OpponentAI
	DefaultUI       = UITerminal
)

// Opponent names accepted by --opponent
const (
	OpponentAI    = "ai"
	OpponentHuman = "human"
)

// Host names accepted by --ui
const (
	UITerminal = "terminal"
	UIWindow   = "window"
)

// Config holds the application configuration
type Config struct {
	Opponent string
	AINoise  bool
	UI       string
	LogFile  string
	Seed     int64
}

// VersusAI reports whether the right paddle is computer controlled
func (c *Config) VersusAI() bool {
	return c.Opponent == OpponentAI
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("rong", flag.ContinueOnError)

	opponent := fs.String("opponent", DefaultOpponent, "right paddle controller (ai|human)")
	noise := fs.Bool("ai-noise", false, "jitter AI paddle moves")
	ui := fs.String("ui", DefaultUI, "display host (terminal|window)")
	logFile := fs.String("log", "", "write log output to this file")
	seed := fs.Int64("seed", 0, "random seed (0 = time based)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	// Validate opponent
	if *opponent != OpponentAI && *opponent != OpponentHuman {
		return nil, fmt.Errorf("opponent must be %q or %q, got %q", OpponentAI, OpponentHuman, *opponent)
	}

	// Validate host
	if *ui != UITerminal && *ui != UIWindow {
		return nil, fmt.Errorf("ui must be %q or %q, got %q", UITerminal, UIWindow, *ui)
	}

	// Noise only affects the AI
	if *noise && *opponent != OpponentAI {
		return nil, fmt.Errorf("--ai-noise requires --opponent %s", OpponentAI)
	}

	cfg := &Config{
		Opponent: *opponent,
		AINoise:  *noise,
		UI:       *ui,
		LogFile:  *logFile,
		Seed:     *seed,
	}

	return cfg, nil
}
