// chess-console plays chess on the terminal against a person or one of
// several search engines, or plays engines against each other unattended.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lgbarn/chess-console-go/internal/config"
	"github.com/lgbarn/chess-console-go/internal/console"
	"github.com/lgbarn/chess-console-go/internal/match"
	"github.com/lgbarn/chess-console-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-console-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run plays a self-play batch when one is configured and an interactive
// session otherwise.
func run(ctx context.Context, cfg *config.Config, in io.Reader) error {
	if cfg.SelfPlay.Enabled() {
		return runSelfPlay(ctx, cfg)
	}
	session, err := console.New(cfg, in)
	if err != nil {
		return err
	}
	return session.Run(ctx)
}

// runSelfPlay plays the configured batch and writes every finished game.
func runSelfPlay(ctx context.Context, cfg *config.Config) error {
	cfg.Logf(1, "self-play: %s vs %s, %s results", cfg.Players.White, cfg.Players.Black, cfg.Output.ResultFormat)

	results, err := match.RunSelfPlay(ctx, cfg)

	w := output.NewResultWriter(cfg)
	for _, res := range results {
		if werr := w.WriteResult(res); werr != nil && err == nil {
			err = werr
		}
	}
	if cerr := w.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, `chess-console-go version %s

Usage: chess-console [options]

Plays chess in the terminal. Moves are entered as e2e4, e2 e4, Nf3, exd5,
e8=Q or as four grid numbers "row col row col" (row 0 is rank 8, column 0
is file a). Pawns always promote to a queen; castling and en passant are
not supported. Type "help" during a game for the command list.

Examples:
  chess-console                                  human vs minimax (depth 3)
  chess-console -white minimax -black human      play Black
  chess-console -white human -black human        two players at one terminal
  chess-console -white greedy -black minimax -selfplay 20 -format json

Options:
`, programVersion)
	flag.PrintDefaults()
}
