package search

import (
	"math/rand"
	"time"

	"github.com/lgbarn/chess-console-go/internal/chess"
	"github.com/lgbarn/chess-console-go/internal/engine"
)

// Random picks uniformly among the legal moves.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random strategy seeded from the clock.
func NewRandom() *Random {
	return NewRandomWithSeed(time.Now().UnixNano())
}

// NewRandomWithSeed returns a Random strategy with a fixed seed, so a
// sequence of choices can be replayed.
func NewRandomWithSeed(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Name returns "random".
func (r *Random) Name() string { return NameRandom }

// SelectMove returns a uniformly chosen legal move.
func (r *Random) SelectMove(board *chess.Board, colour chess.Colour) (chess.Move, bool) {
	moves := engine.AllLegalMoves(board, colour)
	if len(moves) == 0 {
		return chess.NoMove, false
	}
	return moves[r.rng.Intn(len(moves))], true
}
