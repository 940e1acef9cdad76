package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-console-go/internal/chess"
	"github.com/lgbarn/chess-console-go/internal/errors"
	"github.com/lgbarn/chess-console-go/internal/search"
)

var errInvalid = errors.ErrInvalidConfig

// PlayerKind names who controls one side.
type PlayerKind string

// Player kinds. Every kind except Human is an engine strategy name.
const (
	Human      PlayerKind = "human"
	Random     PlayerKind = PlayerKind(search.NameRandom)
	Greedy     PlayerKind = PlayerKind(search.NameGreedy)
	Minimax    PlayerKind = PlayerKind(search.NameMinimax)
	Exhaustive PlayerKind = PlayerKind(search.NameExhaustive)
)

// PlayerKinds lists the accepted player kinds in help order.
var PlayerKinds = []PlayerKind{Human, Random, Greedy, Minimax, Exhaustive}

// ParsePlayerKind reads a player kind, ignoring case.
func ParsePlayerKind(s string) (PlayerKind, error) {
	k := PlayerKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range PlayerKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown player %q (want one of %s): %w", s, kindList(), errInvalid)
}

// IsEngine reports whether the kind is played by a search strategy.
func (k PlayerKind) IsEngine() bool { return k != Human }

func kindList() string {
	names := make([]string, len(PlayerKinds))
	for i, k := range PlayerKinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// PlayersConfig holds who plays each colour.
type PlayersConfig struct {
	White PlayerKind
	Black PlayerKind
}

// NewPlayersConfig creates a PlayersConfig with default values: a human
// playing White against the minimax engine.
func NewPlayersConfig() *PlayersConfig {
	return &PlayersConfig{White: Human, Black: Minimax}
}

// For returns the player kind of colour.
func (p *PlayersConfig) For(colour chess.Colour) PlayerKind {
	if colour == chess.White {
		return p.White
	}
	return p.Black
}

// Validate checks that both players are known kinds.
func (p *PlayersConfig) Validate() error {
	if _, err := ParsePlayerKind(string(p.White)); err != nil {
		return fmt.Errorf("white: %w", err)
	}
	if _, err := ParsePlayerKind(string(p.Black)); err != nil {
		return fmt.Errorf("black: %w", err)
	}
	return nil
}
