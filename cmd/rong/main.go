package main

import (
	"fmt"
	"os"

	"github.com/diegok/rong/internal/app"
	"github.com/diegok/rong/internal/config"
	"github.com/diegok/rong/internal/window"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)

	host := application.RunTerminal
	if cfg.UI == config.UIWindow {
		host = window.Run
	}

	if err := application.Run(host); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  rong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --opponent <ai|human>      Who plays the right paddle (default: ai)")
	fmt.Fprintln(os.Stderr, "  --ai-noise                 Make the AI paddle jitter")
	fmt.Fprintln(os.Stderr, "  --ui <terminal|window>     Play in the terminal or a window (default: terminal)")
	fmt.Fprintln(os.Stderr, "  --log <file>               Append a game log to file")
	fmt.Fprintln(os.Stderr, "  --seed <n>                 Random seed (default: time based)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  W / S            left paddle")
	fmt.Fprintln(os.Stderr, "  Up / Down        right paddle (with --opponent human)")
	fmt.Fprintln(os.Stderr, "  q / Esc          quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  rong")
	fmt.Fprintln(os.Stderr, "  rong --opponent human --ui window")
}
