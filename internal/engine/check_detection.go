package engine

import "github.com/lgbarn/chess-console-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked by the
// opposite colour. A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := FindKing(board, colour)
	if !ok {
		return false
	}
	return IsSquareUnderAttack(board, kingSq, colour.Opposite())
}

// FindKing finds the king of the given colour on the board.
// It returns chess.NoSquare and false when the king is absent.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if board.Squares[row][col].Is(colour, chess.King) {
				return chess.Square{Row: row, Col: col}, true
			}
		}
	}
	return chess.NoSquare, false
}

// IsSquareUnderAttack returns true if any piece of byColour could move to sq
// under its pseudo-legal geometry.
func IsSquareUnderAttack(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	if !sq.Valid() {
		return false
	}
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() || piece.Colour != byColour {
				continue
			}
			if IsPseudoLegal(board, chess.Square{Row: row, Col: col}, sq) {
				return true
			}
		}
	}
	return false
}
