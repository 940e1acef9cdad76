package config

import "fmt"

// SelfPlayConfig holds settings for engine-versus-engine batches.
type SelfPlayConfig struct {
	// Games is the number of games to play; 0 runs the interactive console
	Games int

	// Workers is the number of games played concurrently
	Workers int

	// MaxPlies stops a game that has not finished after this many plies
	MaxPlies int
}

// NewSelfPlayConfig creates a SelfPlayConfig with default values.
func NewSelfPlayConfig() *SelfPlayConfig {
	return &SelfPlayConfig{Workers: 1, MaxPlies: 200}
}

// Enabled reports whether a self-play batch was requested.
func (s *SelfPlayConfig) Enabled() bool { return s.Games > 0 }

// Validate checks that the self-play configuration is valid.
func (s *SelfPlayConfig) Validate() error {
	if s.Games < 0 {
		return fmt.Errorf("self-play games %d must not be negative: %w", s.Games, errInvalid)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers %d must be at least 1: %w", s.Workers, errInvalid)
	}
	if s.MaxPlies < 1 {
		return fmt.Errorf("max plies %d must be at least 1: %w", s.MaxPlies, errInvalid)
	}
	return nil
}
