package engine

import (
	"github.com/lgbarn/chess-console-go/internal/chess"
)

// CommitMove validates a move for the given colour and applies it to the
// board. Returns true if the move was applied; on false the board is
// untouched.
func CommitMove(board *chess.Board, colour chess.Colour, move chess.Move) bool {
	if !IsMoveLegalFor(board, colour, move.From, move.To) {
		return false
	}
	ApplyMove(board, move)
	return true
}

// ApplyMove relocates the piece without validation. A pawn arriving on its
// far row is replaced by a queen of its colour. It returns the captured
// piece, or chess.Empty. Callers must only pass moves obtained from the
// legality checks.
func ApplyMove(board *chess.Board, move chess.Move) chess.Piece {
	piece := board.Get(move.From)
	captured := board.Get(move.To)

	board.Relocate(move.From, move.To)

	if promotes(piece, move.To) {
		board.Set(move.To, chess.Piece{Kind: chess.Queen, Colour: piece.Colour})
	}

	return captured
}

// IsPromotion reports whether the move, played on board, promotes a pawn.
func IsPromotion(board *chess.Board, move chess.Move) bool {
	return promotes(board.Get(move.From), move.To)
}
