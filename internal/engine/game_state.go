package engine

import "github.com/lgbarn/chess-console-go/internal/chess"

// Status classifies a position from one colour's point of view.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// IsOver reports whether the status ends the game.
func (s Status) IsOver() bool {
	return s == Checkmate || s == Stalemate
}

// IsCheckmate returns true if the colour is in check and has no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if the colour is not in check and has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// Classify returns the status of the position for the given colour.
func Classify(board *chess.Board, colour chess.Colour) Status {
	inCheck := IsInCheck(board, colour)
	hasMoves := HasLegalMoves(board, colour)
	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case !hasMoves:
		return Stalemate
	case inCheck:
		return Check
	default:
		return Ongoing
	}
}
