package notation

import (
	"strings"

	"github.com/lgbarn/chess-console-go/internal/chess"
	"github.com/lgbarn/chess-console-go/internal/engine"
)

// FormatSAN writes move in standard algebraic notation. The board is the
// position before the move, which must be legal. Check and mate marks are
// appended from the opponent's resulting status.
func FormatSAN(board *chess.Board, move chess.Move) string {
	piece := board.Get(move.From)
	if piece.IsEmpty() {
		return move.String()
	}
	capture := !board.Get(move.To).IsEmpty()

	var sb strings.Builder
	if piece.Kind == chess.Pawn {
		// pawn captures always include the file
		if capture {
			sb.WriteByte(move.From.File())
		}
	} else {
		sb.WriteByte(piece.Kind.Letter())
		sb.WriteString(disambiguation(board, piece, move))
	}
	if capture {
		sb.WriteByte('x')
	}
	sb.WriteString(move.To.String())
	if engine.IsPromotion(board, move) {
		sb.WriteString("=Q")
	}

	after := board.Clone()
	engine.ApplyMove(after, move)
	switch engine.Classify(after, piece.Colour.Opposite()) {
	case engine.Checkmate:
		sb.WriteByte('#')
	case engine.Check:
		sb.WriteByte('+')
	}
	return sb.String()
}

// disambiguation returns the origin file, rank or both needed to tell move
// apart from other legal moves of the same kind to the same square.
func disambiguation(board *chess.Board, piece chess.Piece, move chess.Move) string {
	var rivals []chess.Square
	for _, m := range engine.AllLegalMoves(board, piece.Colour) {
		if m.To == move.To && m.From != move.From && board.Get(m.From).Kind == piece.Kind {
			rivals = append(rivals, m.From)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range rivals {
		if sq.Col == move.From.Col {
			sameFile = true
		}
		if sq.Row == move.From.Row {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return string(move.From.File())
	case !sameRank:
		return string(move.From.Rank())
	default:
		return move.From.String()
	}
}
