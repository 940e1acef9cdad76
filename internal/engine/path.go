package engine

import "github.com/lgbarn/chess-console-go/internal/chess"

// IsPseudoLegal reports whether the piece standing on from may move to to
// by its movement geometry and the occupancy of the squares it passes.
// It does not consider whether the mover's king is left attacked, nor
// whether the destination holds a piece of the mover's own colour.
func IsPseudoLegal(board *chess.Board, from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}
	piece := board.Get(from)

	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)

	switch piece.Kind {
	case chess.Pawn:
		return canPawnMove(board, piece.Colour, from, to)

	case chess.Knight:
		return (colDiff == 1 && rowDiff == 2) || (colDiff == 2 && rowDiff == 1)

	case chess.Bishop:
		if colDiff != rowDiff {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Rook:
		if colDiff != 0 && rowDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Queen:
		if colDiff != rowDiff && colDiff != 0 && rowDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.King:
		return colDiff <= 1 && rowDiff <= 1
	}

	return false
}

// isPathClear checks that every square strictly between from and to is
// empty. The two squares must share a row, column or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)
	distance := max(abs(to.Row-from.Row), abs(to.Col-from.Col))

	for i := 1; i < distance; i++ {
		sq := chess.Square{Row: from.Row + i*rowDir, Col: from.Col + i*colDir}
		if !board.Get(sq).IsEmpty() {
			return false
		}
	}

	return true
}
