package engine

import "github.com/lgbarn/chess-console-go/internal/chess"

// IsValidMove reports whether the piece on from may legally move to to.
// The move is rejected for off-board squares, an empty origin, a
// destination holding a piece of the mover's colour, a pseudo-illegal
// geometry, or when it would leave the mover's own king attacked.
func IsValidMove(board *chess.Board, from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	piece := board.Get(from)
	if piece.IsEmpty() {
		return false
	}
	target := board.Get(to)
	if !target.IsEmpty() && target.Colour == piece.Colour {
		return false
	}
	if !IsPseudoLegal(board, from, to) {
		return false
	}
	return tryMove(board, from, to, piece.Colour)
}

// IsMoveLegalFor is IsValidMove restricted to pieces of the given colour.
func IsMoveLegalFor(board *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	piece := board.Get(from)
	if piece.IsEmpty() || piece.Colour != colour {
		return false
	}
	return IsValidMove(board, from, to)
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	testBoard := board.Clone()
	testBoard.Relocate(from, to)
	return !IsInCheck(testBoard, colour)
}

// LegalMoves returns every square the piece on from may legally move to,
// in row-major order. An empty origin has no moves.
func LegalMoves(board *chess.Board, from chess.Square) []chess.Square {
	if board.Get(from).IsEmpty() {
		return nil
	}
	var targets []chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			to := chess.Square{Row: row, Col: col}
			if IsValidMove(board, from, to) {
				targets = append(targets, to)
			}
		}
	}
	return targets
}

// AllLegalMoves returns every legal move of the given colour. Origins are
// visited in row-major order and destinations likewise, so the order is
// stable for a given board.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	board.Each(func(from chess.Square, piece chess.Piece) {
		if piece.Colour != colour {
			return
		}
		for _, to := range LegalMoves(board, from) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	})
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			if hasLegalMovesForPiece(board, chess.Square{Row: row, Col: col}) {
				return true
			}
		}
	}
	return false
}

// hasLegalMovesForPiece checks if a specific piece has any legal moves.
func hasLegalMovesForPiece(board *chess.Board, from chess.Square) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if IsValidMove(board, from, chess.Square{Row: row, Col: col}) {
				return true
			}
		}
	}
	return false
}
