package engine

import "github.com/lgbarn/chess-console-go/internal/chess"

// canPawnMove applies the pawn geometry: a single push onto an empty square,
// a double push from the starting row over an empty square onto an empty
// square, or a one-square diagonal step onto an opposing piece.
// There is no en passant.
func canPawnMove(board *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	dir := chess.ColourOffset(colour)
	rowStep := to.Row - from.Row
	colDiff := abs(to.Col - from.Col)
	target := board.Get(to)

	switch {
	case colDiff == 0 && rowStep == dir:
		return target.IsEmpty()

	case colDiff == 0 && rowStep == 2*dir:
		if from.Row != chess.PawnStartRow(colour) {
			return false
		}
		middle := chess.Square{Row: from.Row + dir, Col: from.Col}
		return target.IsEmpty() && board.Get(middle).IsEmpty()

	case colDiff == 1 && rowStep == dir:
		return !target.IsEmpty() && target.Colour != colour
	}

	return false
}

// promotes reports whether a pawn of the colour arriving on to must promote.
func promotes(piece chess.Piece, to chess.Square) bool {
	return piece.Kind == chess.Pawn && to.Row == chess.PromotionRow(piece.Colour)
}
