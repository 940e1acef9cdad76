package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-console-go/internal/chess"
)

// BoardOptions controls how RenderBoard draws a position.
type BoardOptions struct {
	// Unicode draws chess glyphs instead of FEN letters.
	Unicode bool

	// ShowGrid labels rows and columns with the 0-7 indices used by the
	// "row col row col" input form instead of ranks and files.
	ShowGrid bool

	// Highlight marks squares, typically the legal destinations of a
	// piece: '*' on an empty square, 'x' on an occupied one.
	Highlight []chess.Square
}

var glyphs = map[chess.Piece]string{
	chess.W(chess.King): "♔", chess.W(chess.Queen): "♕", chess.W(chess.Rook): "♖",
	chess.W(chess.Bishop): "♗", chess.W(chess.Knight): "♘", chess.W(chess.Pawn): "♙",
	chess.B(chess.King): "♚", chess.B(chess.Queen): "♛", chess.B(chess.Rook): "♜",
	chess.B(chess.Bishop): "♝", chess.B(chess.Knight): "♞", chess.B(chess.Pawn): "♟",
}

// RenderBoard draws board with rank 8 at the top.
func RenderBoard(w io.Writer, board *chess.Board, opts BoardOptions) error {
	marked := make(map[chess.Square]bool, len(opts.Highlight))
	for _, sq := range opts.Highlight {
		marked[sq] = true
	}

	var sb strings.Builder
	if opts.ShowGrid {
		sb.WriteString(" ")
		for col := 0; col < chess.BoardSize; col++ {
			fmt.Fprintf(&sb, " %d", col)
		}
		sb.WriteByte('\n')
	}

	for row := 0; row < chess.BoardSize; row++ {
		if opts.ShowGrid {
			fmt.Fprintf(&sb, "%d", row)
		} else {
			sb.WriteByte(byte('8' - row))
		}
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			sb.WriteByte(' ')
			sb.WriteString(cell(board.Get(sq), marked[sq], opts))
		}
		sb.WriteByte('\n')
	}

	if !opts.ShowGrid {
		sb.WriteString(" ")
		for col := 0; col < chess.BoardSize; col++ {
			fmt.Fprintf(&sb, " %c", chess.FileBase+col)
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func cell(p chess.Piece, marked bool, opts BoardOptions) string {
	switch {
	case marked && p.IsEmpty():
		return "*"
	case marked:
		return "x"
	case p.IsEmpty() && opts.ShowGrid:
		return "-"
	case p.IsEmpty():
		return "."
	case opts.Unicode:
		return glyphs[p]
	}
	return string(p.Letter())
}
