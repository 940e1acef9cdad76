package notation

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-console-go/internal/chess"
	"github.com/lgbarn/chess-console-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-console-go/internal/errors"
	"github.com/lgbarn/chess-console-go/internal/testutil"
)

const (
	twoKnightsFEN = "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1"
	twoRooksFEN   = "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1"
	promotionFEN  = "8/4P3/8/8/8/8/8/k6K w - - 0 1"
	pawnTakesFEN  = "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1"
	foolsMateFEN  = "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b - - 0 2"
)

func TestParseSquare(t *testing.T) {
	sq, err := ParseSquare("e4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sq, chess.Sq(4, 4))

	sq, err = ParseSquare(" a8 ")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sq, chess.Sq(0, 0))

	tests := []struct {
		input  string
		column int
	}{
		{"i4", 1},
		{"e9", 2},
		{"E4", 1},
		{"e", 0},
		{"e44", 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseSquare(tt.input)
			var pe *chesserrors.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("ParseSquare(%q) error = %v, want *ParseError", tt.input, err)
			}
			testutil.AssertEqual(t, pe.Column, tt.column)
			testutil.AssertTrue(t, errors.Is(err, chesserrors.ErrParseFailure))
		})
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		text   string
		want   string
	}{
		{"pawn push SAN", engine.InitialFEN, chess.White, "e4", "e2e4"},
		{"coordinate", engine.InitialFEN, chess.White, "e2e4", "e2e4"},
		{"coordinate with dash", engine.InitialFEN, chess.White, "e2-e4", "e2e4"},
		{"coordinate with space", engine.InitialFEN, chess.White, "e2 e4", "e2e4"},
		{"knight SAN", engine.InitialFEN, chess.White, "Nf3", "g1f3"},
		{"knight long form", engine.InitialFEN, chess.White, "Ng1-f3", "g1f3"},
		{"knight coordinate", engine.InitialFEN, chess.White, "g1f3", "g1f3"},
		{"black knight", engine.InitialFEN, chess.Black, "Nc6", "b8c6"},
		{"black pawn", engine.InitialFEN, chess.Black, "d5", "d7d5"},
		{"file disambiguation", twoKnightsFEN, chess.White, "Nbd2", "b1d2"},
		{"file disambiguation other", twoKnightsFEN, chess.White, "Nfd2", "f1d2"},
		{"rank disambiguation", twoRooksFEN, chess.White, "R5a3", "a5a3"},
		{"pawn capture", pawnTakesFEN, chess.White, "exd5", "e4d5"},
		{"pawn capture short", pawnTakesFEN, chess.White, "ed5", "e4d5"},
		{"pawn capture coordinate", pawnTakesFEN, chess.White, "e4xd5", "e4d5"},
		{"promotion SAN", promotionFEN, chess.White, "e8=Q", "e7e8"},
		{"promotion implicit", promotionFEN, chess.White, "e8", "e7e8"},
		{"promotion coordinate", promotionFEN, chess.White, "e7e8q", "e7e8"},
		{"mate suffix", foolsMateFEN, chess.Black, "Qh4#", "d8h4"},
		{"annotations", foolsMateFEN, chess.Black, "Qh4!!", "d8h4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := engine.MustParseFEN(tt.fen).Board
			got, err := ParseMove(board, tt.colour, tt.text)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got.String(), tt.want)
		})
	}
}

func TestParseMove_Errors(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		text   string
		want   error
	}{
		{"empty", engine.InitialFEN, chess.White, "   ", chesserrors.ErrParseFailure},
		{"garbage", engine.InitialFEN, chess.White, "hello", chesserrors.ErrParseFailure},
		{"bad rank", engine.InitialFEN, chess.White, "e9", chesserrors.ErrParseFailure},
		{"bad origin", engine.InitialFEN, chess.White, "Zze4", chesserrors.ErrParseFailure},
		{"castle kingside", engine.InitialFEN, chess.White, "O-O", chesserrors.ErrUnsupported},
		{"castle zeros", engine.InitialFEN, chess.Black, "0-0-0", chesserrors.ErrUnsupported},
		{"underpromotion", promotionFEN, chess.White, "e8=N", chesserrors.ErrUnsupported},
		{"ambiguous knight", twoKnightsFEN, chess.White, "Nd2", chesserrors.ErrAmbiguousMove},
		{"ambiguous rook", twoRooksFEN, chess.White, "Ra3", chesserrors.ErrAmbiguousMove},
		{"wrong side pawn", engine.InitialFEN, chess.White, "e5", chesserrors.ErrIllegalMove},
		{"blocked king", engine.InitialFEN, chess.White, "Ke2", chesserrors.ErrIllegalMove},
		{"opponent piece", engine.InitialFEN, chess.White, "e7e5", chesserrors.ErrIllegalMove},
		{"promotion mark on quiet move", engine.InitialFEN, chess.White, "e4=Q", chesserrors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := engine.MustParseFEN(tt.fen).Board
			move, err := ParseMove(board, tt.colour, tt.text)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseMove(%q) error = %v, want %v", tt.text, err, tt.want)
			}
			testutil.AssertEqual(t, move, chess.NoMove)
		})
	}
}

func TestIsCastling(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"O-O", true},
		{"O-O-O", true},
		{"0-0", true},
		{"o-o-o", true},
		{"OO", true},
		{"O-O+", true},
		{"O", false},
		{"O-O-O-O", false},
		{"-O-O", false},
		{"e4", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			testutil.AssertEqual(t, IsCastling(tt.text), tt.want)
		})
	}
}

func TestFormatSAN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want string
	}{
		{"pawn push", engine.InitialFEN, "e2e4", "e4"},
		{"knight", engine.InitialFEN, "g1f3", "Nf3"},
		{"pawn capture", pawnTakesFEN, "e4d5", "exd5"},
		{"file disambiguation", twoKnightsFEN, "b1d2", "Nbd2"},
		{"no disambiguation needed", twoKnightsFEN, "b1c3", "Nc3"},
		{"rank disambiguation", twoRooksFEN, "a1a3", "R1a3"},
		{"promotion", promotionFEN, "e7e8", "e8=Q"},
		{"check", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1a8", "Ra8+"},
		{"mate", foolsMateFEN, "d8h4", "Qh4#"},
		{"king capture", "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", "e1d2", "Kxd2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := engine.MustParseFEN(tt.fen).Board
			got := FormatSAN(board, testutil.MustMove(t, tt.move))
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestFormatSAN_RoundTripsThroughParseMove(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
		"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
		twoRooksFEN,
	}

	for _, fen := range fens {
		pos := engine.MustParseFEN(fen)
		for _, m := range engine.AllLegalMoves(pos.Board, pos.ToMove) {
			san := FormatSAN(pos.Board, m)
			got, err := ParseMove(pos.Board, pos.ToMove, san)
			if err != nil {
				t.Errorf("%s: ParseMove(%q) error: %v", fen, san, err)
				continue
			}
			testutil.AssertEqual(t, got, m, "%s: %s", fen, san)
		}
	}
}

func TestParseCoords(t *testing.T) {
	m, err := ParseCoords("6 4 4 4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.String(), "e2e4")

	m, err = ParseCoords("  0 1   2 2 ")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.String(), "b8c6")

	for _, bad := range []string{"6 4 4", "6 4 4 8", "a b c d", "6 4 4 4 4", "-1 0 0 0"} {
		_, err := ParseCoords(bad)
		if !errors.Is(err, chesserrors.ErrParseFailure) {
			t.Errorf("ParseCoords(%q) error = %v, want ErrParseFailure", bad, err)
		}
	}

	testutil.AssertTrue(t, LooksLikeCoords("6 4 4 4"))
	testutil.AssertTrue(t, LooksLikeCoords("9 9 9 9"))
	testutil.AssertFalse(t, LooksLikeCoords("e2 e4"))
	testutil.AssertFalse(t, LooksLikeCoords("6 4 4"))
}
