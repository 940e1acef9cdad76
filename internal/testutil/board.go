package testutil

import (
	"testing"

	"github.com/lgbarn/chess-console-go/internal/chess"
)

// BoardFromRows builds a board from eight strings of eight characters,
// rank 8 first. Letters follow FEN case (upper for White) and '.' marks
// an empty square. Any malformed row aborts the test.
func BoardFromRows(t *testing.T, rows ...string) *chess.Board {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("BoardFromRows: got %d rows, want %d", len(rows), chess.BoardSize)
	}
	board := chess.NewBoard()
	for row, line := range rows {
		if len(line) != chess.BoardSize {
			t.Fatalf("BoardFromRows: row %d is %q, want %d characters", row, line, chess.BoardSize)
		}
		for col := 0; col < chess.BoardSize; col++ {
			c := line[col]
			if c == '.' {
				continue
			}
			kind := chess.KindFromLetter(c)
			if kind == chess.NoKind {
				t.Fatalf("BoardFromRows: bad piece %q at row %d col %d", c, row, col)
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			board.Set(chess.Sq(row, col), chess.Piece{Kind: kind, Colour: colour})
		}
	}
	return board
}

// MustSquare parses an algebraic square name such as "e4".
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	if len(name) != 2 {
		t.Fatalf("MustSquare: bad square %q", name)
	}
	sq, ok := chess.SquareFromAlgebraic(name[0], name[1])
	if !ok {
		t.Fatalf("MustSquare: bad square %q", name)
	}
	return sq
}

// MustSquares parses a list of algebraic square names.
func MustSquares(t *testing.T, names ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, 0, len(names))
	for _, name := range names {
		squares = append(squares, MustSquare(t, name))
	}
	return squares
}

// MustMove parses a four-character coordinate move such as "e2e4".
func MustMove(t *testing.T, text string) chess.Move {
	t.Helper()
	if len(text) != 4 {
		t.Fatalf("MustMove: bad move %q", text)
	}
	return chess.Move{From: MustSquare(t, text[:2]), To: MustSquare(t, text[2:])}
}

// MoveStrings renders moves as coordinate text for set comparisons.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	return out
}
