package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-console-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-console-go/internal/errors"
	"github.com/lgbarn/chess-console-go/internal/testutil"
)

func TestParseFEN_Initial(t *testing.T) {
	pos, err := ParseFEN(InitialFEN)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pos.Board, chess.NewInitialBoard())
	testutil.AssertEqual(t, pos.ToMove, chess.White)
	testutil.AssertEqual(t, pos.MoveNumber, 1)
	testutil.AssertEqual(t, NewInitialPosition(), pos)
}

func TestFEN_RoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 37",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			pos, err := ParseFEN(fen)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, pos.FEN(), fen)
		})
	}
}

func TestParseFEN_Defaults(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4K3")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pos.ToMove, chess.White)
	testutil.AssertEqual(t, pos.MoveNumber, 1)
	testutil.AssertEqual(t, pos.FEN(), "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
}

func TestParseFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"seven ranks", "8/8/8/8/8/8/8 w - - 0 1"},
		{"nine files", "rnbqkbnrr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"short rank", "rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"bad piece", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"non-ASCII piece", "ŋ7/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"non-ASCII digit", "٨/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFEN(tt.fen)
			if !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Errorf("ParseFEN(%q) error = %v, want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}

func TestBoardToFEN_ClampsMoveNumber(t *testing.T) {
	got := BoardToFEN(chess.NewInitialBoard(), chess.Black, 0)
	testutil.AssertEqual(t, got, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b - - 0 1")
}

func TestMustParseFEN_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseFEN did not panic on a bad FEN")
		}
	}()
	MustParseFEN("not a fen")
}
