// Package eval scores chess positions by material.
package eval

import "github.com/lgbarn/chess-console-go/internal/chess"

// pieceValues is indexed by chess.Kind.
var pieceValues = [chess.NumKinds]int{
	chess.NoKind: 0,
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
	chess.King:   100,
}

// Value returns the material value of a piece kind.
func Value(kind chess.Kind) int {
	if kind < 0 || kind >= chess.NumKinds {
		return 0
	}
	return pieceValues[kind]
}

// Evaluate returns the material balance of the board: White pieces count
// positive, Black pieces negative.
func Evaluate(board *chess.Board) int {
	score := 0
	board.Each(func(_ chess.Square, piece chess.Piece) {
		if piece.Colour == chess.White {
			score += pieceValues[piece.Kind]
		} else {
			score -= pieceValues[piece.Kind]
		}
	})
	return score
}

// ForColour converts a White-relative score into the given colour's view.
func ForColour(score int, colour chess.Colour) int {
	if colour == chess.Black {
		return -score
	}
	return score
}
