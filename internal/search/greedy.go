package search

import (
	"github.com/lgbarn/chess-console-go/internal/chess"
	"github.com/lgbarn/chess-console-go/internal/engine"
	"github.com/lgbarn/chess-console-go/internal/eval"
)

// Greedy looks one ply ahead and takes the move with the best material
// outcome for the mover. Ties keep the first move in enumeration order.
type Greedy struct{}

// Name returns "greedy".
func (Greedy) Name() string { return NameGreedy }

// SelectMove returns the legal move maximising the mover's material.
func (Greedy) SelectMove(board *chess.Board, colour chess.Colour) (chess.Move, bool) {
	best := chess.NoMove
	bestScore := 0
	for _, m := range engine.AllLegalMoves(board, colour) {
		child := board.Clone()
		engine.ApplyMove(child, m)
		score := eval.ForColour(eval.Evaluate(child), colour)
		if best.IsNone() || score > bestScore {
			best, bestScore = m, score
		}
	}
	return best, !best.IsNone()
}
