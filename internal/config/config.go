// Package config provides configuration for the chess console.
package config

import (
	"fmt"
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game events, 2=engine commentary

	// Sub-configurations
	Players  *PlayersConfig
	Output   *OutputConfig
	SelfPlay *SelfPlayConfig

	// Search
	Depth int
	Seed  int64 // 0 = seed from the clock

	// Starting position; empty means the standard initial position
	StartFEN string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Players:    NewPlayersConfig(),
		Output:     NewOutputConfig(),
		SelfPlay:   NewSelfPlayConfig(),
		Depth:      3,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the configuration and every sub-configuration.
func (c *Config) Validate() error {
	if c.Depth < 1 {
		return fmt.Errorf("search depth %d must be at least 1: %w", c.Depth, errInvalid)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d must not be negative: %w", c.Verbosity, errInvalid)
	}
	if err := c.Players.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.SelfPlay.Validate()
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
	if n := len(format); n == 0 || format[n-1] != '\n' {
		fmt.Fprintln(c.LogFile)
	}
}
