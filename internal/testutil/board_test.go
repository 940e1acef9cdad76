package testutil

import (
	"testing"

	"github.com/lgbarn/chess-console-go/internal/chess"
)

func TestBoardFromRows(t *testing.T) {
	board := BoardFromRows(t,
		"....k...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....P...",
		"....K...",
	)

	AssertEqual(t, board.Get(MustSquare(t, "e8")), chess.B(chess.King))
	AssertEqual(t, board.Get(MustSquare(t, "e1")), chess.W(chess.King))
	AssertEqual(t, board.Get(MustSquare(t, "e2")), chess.W(chess.Pawn))
	AssertTrue(t, board.Get(MustSquare(t, "e4")).IsEmpty(), "e4 should be empty")
}

func TestMustMove(t *testing.T) {
	m := MustMove(t, "g1f3")
	AssertEqual(t, m.From, chess.Sq(7, 6))
	AssertEqual(t, m.To, chess.Sq(5, 5))
	AssertEqual(t, m.String(), "g1f3")
}

func TestMoveStrings(t *testing.T) {
	moves := []chess.Move{MustMove(t, "e2e4"), MustMove(t, "b8c6")}
	AssertSameStrings(t, MoveStrings(moves), []string{"b8c6", "e2e4"})
}

func TestAssertSameSquares_IgnoresOrder(t *testing.T) {
	AssertSameSquares(t, MustSquares(t, "a3", "c3"), MustSquares(t, "c3", "a3"))
	AssertSameSquares(t, nil, []chess.Square{})
}
