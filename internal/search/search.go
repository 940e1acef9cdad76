// Package search selects moves for engine-controlled players.
//
// Every strategy works on clones of the board it is given and reports
// (chess.NoMove, false) when the side to move has no legal move. Callers
// are expected to have checked for checkmate or stalemate first.
package search

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-console-go/internal/chess"
	"github.com/lgbarn/chess-console-go/internal/errors"
)

// Strategy chooses a move for colour on board.
type Strategy interface {
	SelectMove(board *chess.Board, colour chess.Colour) (chess.Move, bool)
	Name() string
}

// Stats describes the work done by the most recent search.
type Stats struct {
	Nodes int64 // positions visited, root included
	Score int   // White-relative value of the chosen move
}

// Reporter is implemented by strategies that keep search statistics.
type Reporter interface {
	LastStats() Stats
}

func (s *Stats) visit() {
	if s != nil {
		s.Nodes++
	}
}

// Strategy names accepted by New.
const (
	NameRandom     = "random"
	NameGreedy     = "greedy"
	NameMinimax    = "minimax"
	NameExhaustive = "exhaustive"
)

// Names lists the strategy names accepted by New.
var Names = []string{NameRandom, NameGreedy, NameMinimax, NameExhaustive}

// New builds a strategy by name. Depth applies to the tree searches and
// must be positive for them; a zero seed makes Random time-seeded.
func New(name string, depth int, seed int64) (Strategy, error) {
	switch strings.ToLower(name) {
	case NameRandom:
		if seed == 0 {
			return NewRandom(), nil
		}
		return NewRandomWithSeed(seed), nil
	case NameGreedy:
		return Greedy{}, nil
	case NameMinimax:
		if depth < 1 {
			return nil, fmt.Errorf("minimax depth %d: %w", depth, errors.ErrInvalidConfig)
		}
		return &Minimax{Depth: depth}, nil
	case NameExhaustive:
		if depth < 1 {
			return nil, fmt.Errorf("exhaustive depth %d: %w", depth, errors.ErrInvalidConfig)
		}
		return &Exhaustive{Depth: depth}, nil
	}
	return nil, fmt.Errorf("unknown strategy %q: %w", name, errors.ErrInvalidConfig)
}
