package search

import (
	"github.com/lgbarn/chess-console-go/internal/chess"
	"github.com/lgbarn/chess-console-go/internal/engine"
	"github.com/lgbarn/chess-console-go/internal/eval"
)

// Infinity bounds every reachable material score.
const Infinity = 1 << 30

// Minimax searches Depth plies with alpha-beta pruning. White maximises
// the material score and Black minimises it. Positions where either side
// has no legal move are scored on material alone.
type Minimax struct {
	Depth int
	stats Stats
}

// Name returns "minimax".
func (m *Minimax) Name() string { return NameMinimax }

// LastStats returns the statistics of the most recent SelectMove call.
func (m *Minimax) LastStats() Stats { return m.stats }

// SelectMove returns the first legal move whose subtree value is best for
// colour. It picks the same move as Exhaustive at the same depth.
func (m *Minimax) SelectMove(board *chess.Board, colour chess.Colour) (chess.Move, bool) {
	m.stats = Stats{}
	m.stats.visit()

	maximizing := colour == chess.White
	alpha, beta := -Infinity, Infinity
	best := chess.NoMove
	bestScore := 0

	for _, mv := range engine.AllLegalMoves(board, colour) {
		child := board.Clone()
		engine.ApplyMove(child, mv)
		score := alphaBeta(child, childDepth(m.Depth), alpha, beta, !maximizing, &m.stats)

		// A child that fails against the current bound returns a value no
		// better than that bound, so strict comparison keeps the first best.
		if maximizing {
			if best.IsNone() || score > bestScore {
				best, bestScore = mv, score
			}
			alpha = max(alpha, bestScore)
		} else {
			if best.IsNone() || score < bestScore {
				best, bestScore = mv, score
			}
			beta = min(beta, bestScore)
		}
	}

	m.stats.Score = bestScore
	return best, !best.IsNone()
}

// MinimaxValue returns the alpha-beta value of board searched depth plies
// deep, with White to move when maximizing is true. At depth 0 it equals
// eval.Evaluate.
func MinimaxValue(board *chess.Board, depth, alpha, beta int, maximizing bool) int {
	return alphaBeta(board, depth, alpha, beta, maximizing, nil)
}

func alphaBeta(board *chess.Board, depth, alpha, beta int, maximizing bool, stats *Stats) int {
	stats.visit()

	moves, terminal := expand(board, depth, maximizing)
	if terminal {
		return eval.Evaluate(board)
	}

	if maximizing {
		best := -Infinity
		for _, mv := range moves {
			child := board.Clone()
			engine.ApplyMove(child, mv)
			best = max(best, alphaBeta(child, depth-1, alpha, beta, false, stats))
			alpha = max(alpha, best)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := Infinity
	for _, mv := range moves {
		child := board.Clone()
		engine.ApplyMove(child, mv)
		best = min(best, alphaBeta(child, depth-1, alpha, beta, true, stats))
		beta = min(beta, best)
		if beta <= alpha {
			break
		}
	}
	return best
}

// expand returns the mover's legal moves, or terminal when the depth is
// spent or either colour is checkmated or stalemated.
func expand(board *chess.Board, depth int, maximizing bool) ([]chess.Move, bool) {
	if depth <= 0 {
		return nil, true
	}
	mover := chess.Black
	if maximizing {
		mover = chess.White
	}
	moves := engine.AllLegalMoves(board, mover)
	if len(moves) == 0 || !engine.HasLegalMoves(board, mover.Opposite()) {
		return nil, true
	}
	return moves, false
}

// childDepth is the depth left below the root; a root depth below one
// still looks one ply ahead.
func childDepth(depth int) int {
	if depth < 1 {
		return 0
	}
	return depth - 1
}
