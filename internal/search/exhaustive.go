package search

import (
	"github.com/lgbarn/chess-console-go/internal/chess"
	"github.com/lgbarn/chess-console-go/internal/engine"
	"github.com/lgbarn/chess-console-go/internal/eval"
)

// Exhaustive is plain minimax without pruning. It visits every node to
// Depth and is kept as the reference that Minimax must agree with.
type Exhaustive struct {
	Depth int
	stats Stats
}

// Name returns "exhaustive".
func (e *Exhaustive) Name() string { return NameExhaustive }

// LastStats returns the statistics of the most recent SelectMove call.
func (e *Exhaustive) LastStats() Stats { return e.stats }

// SelectMove returns the first legal move with the best minimax value.
func (e *Exhaustive) SelectMove(board *chess.Board, colour chess.Colour) (chess.Move, bool) {
	e.stats = Stats{}
	e.stats.visit()

	maximizing := colour == chess.White
	best := chess.NoMove
	bestScore := 0

	for _, mv := range engine.AllLegalMoves(board, colour) {
		child := board.Clone()
		engine.ApplyMove(child, mv)
		score := minimax(child, childDepth(e.Depth), !maximizing, &e.stats)
		if best.IsNone() || (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			best, bestScore = mv, score
		}
	}

	e.stats.Score = bestScore
	return best, !best.IsNone()
}

func minimax(board *chess.Board, depth int, maximizing bool, stats *Stats) int {
	stats.visit()

	moves, terminal := expand(board, depth, maximizing)
	if terminal {
		return eval.Evaluate(board)
	}

	best := Infinity
	if maximizing {
		best = -Infinity
	}
	for _, mv := range moves {
		child := board.Clone()
		engine.ApplyMove(child, mv)
		score := minimax(child, depth-1, !maximizing, stats)
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}
	return best
}
