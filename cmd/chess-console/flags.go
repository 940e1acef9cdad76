// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-console-go/internal/config"
	"github.com/lgbarn/chess-console-go/internal/errors"
)

var (
	// Players and search
	whitePlayer = flag.String("white", "human", "White player: human, random, greedy, minimax, exhaustive")
	blackPlayer = flag.String("black", "minimax", "Black player: human, random, greedy, minimax, exhaustive")
	depth       = flag.Int("depth", 3, "Search depth in plies for minimax and exhaustive")
	seed        = flag.Int64("seed", 0, "Random seed (0 = seed from the clock)")
	startFEN    = flag.String("fen", "", "Start from this FEN position")

	// Display options
	unicodeBoard = flag.Bool("unicode", false, "Draw pieces with Unicode chess glyphs")
	showGrid     = flag.Bool("grid", false, "Label the board with 0-7 row/column indices")
	lineLength   = flag.Int("w", 80, "Maximum line length of move lists")

	// Self-play
	selfPlay     = flag.Int("selfplay", 0, "Play N engine games unattended and report the results")
	workers      = flag.Int("workers", 0, "Number of games played at once (0 = auto-detect based on CPU cores)")
	maxPlies     = flag.Int("maxplies", 200, "Stop unattended games after this many plies")
	resultFormat = flag.String("format", "text", "Self-play result format: text, pgn, json, jsonl")

	// Output and logging
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	logFile      = flag.String("l", "", "Write diagnostics to log file")
	appendLog    = flag.String("L", "", "Append diagnostics to log file")
	verbosity    = flag.Int("v", 1, "Diagnostic level: 0 none, 1 game events, 2 engine statistics")
	quiet        = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyPlayerFlags(cfg); err != nil {
		return err
	}
	applyDisplayFlags(cfg)
	if err := applySelfPlayFlags(cfg); err != nil {
		return err
	}

	cfg.Depth = *depth
	cfg.Seed = *seed
	cfg.StartFEN = *startFEN
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return cfg.Validate()
}

// applyPlayerFlags configures who plays each side.
func applyPlayerFlags(cfg *config.Config) error {
	white, err := config.ParsePlayerKind(*whitePlayer)
	if err != nil {
		return errors.Wrap(err, "-white")
	}
	black, err := config.ParsePlayerKind(*blackPlayer)
	if err != nil {
		return errors.Wrap(err, "-black")
	}
	cfg.Players.White, cfg.Players.Black = white, black
	return nil
}

// applyDisplayFlags configures board and move list output.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Output.Unicode = *unicodeBoard
	cfg.Output.ShowGrid = *showGrid
	cfg.Output.MaxLineLength = *lineLength
}

// applySelfPlayFlags configures unattended games.
func applySelfPlayFlags(cfg *config.Config) error {
	cfg.SelfPlay.Games = *selfPlay
	cfg.SelfPlay.MaxPlies = *maxPlies
	cfg.SelfPlay.Workers = *workers
	if cfg.SelfPlay.Workers <= 0 {
		cfg.SelfPlay.Workers = runtime.NumCPU()
	}
	cfg.Output.ResultFormat = config.ResultFormat(*resultFormat)

	if cfg.SelfPlay.Enabled() && (!cfg.Players.White.IsEngine() || !cfg.Players.Black.IsEngine()) {
		return fmt.Errorf("-selfplay needs engine players on both sides: %w", errors.ErrInvalidConfig)
	}
	return nil
}
