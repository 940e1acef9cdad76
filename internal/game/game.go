// Package game holds one chess game session: the authoritative board, the
// side to move and the move history. All changes go through Commit.
package game

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chess-console-go/internal/chess"
	"github.com/lgbarn/chess-console-go/internal/engine"
	"github.com/lgbarn/chess-console-go/internal/errors"
	"github.com/lgbarn/chess-console-go/internal/notation"
	"github.com/lgbarn/chess-console-go/internal/search"
)

// Result strings for finished and unfinished games.
const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	Draw       = "1/2-1/2"
	Unfinished = "*"
)

// Record describes one committed ply.
type Record struct {
	Ply      int // 1-based
	Colour   chess.Colour
	Move     chess.Move
	SAN      string
	Piece    chess.Piece
	Captured chess.Piece
	Promoted bool
	FEN      string // position after the move
}

// Game is a single game session.
type Game struct {
	id              string
	board           *chess.Board
	toMove          chess.Colour
	startFEN        string
	startMoveNumber int
	history         []Record
}

// New starts a game from the standard initial position.
func New() *Game {
	return fromPosition(engine.NewInitialPosition())
}

// NewFromFEN starts a game from a FEN position.
func NewFromFEN(fen string) (*Game, error) {
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return fromPosition(pos), nil
}

func fromPosition(pos engine.Position) *Game {
	return &Game{
		id:              uuid.New().String(),
		board:           pos.Board,
		toMove:          pos.ToMove,
		startFEN:        pos.FEN(),
		startMoveNumber: pos.MoveNumber,
	}
}

// ID returns the game's unique identifier.
func (g *Game) ID() string { return g.id }

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board { return g.board.Clone() }

// ToMove returns the colour whose turn it is.
func (g *Game) ToMove() chess.Colour { return g.toMove }

// Ply returns the number of moves committed so far.
func (g *Game) Ply() int { return len(g.history) }

// MoveNumber returns the full-move number of the side to move.
func (g *Game) MoveNumber() int {
	n := g.startMoveNumber + len(g.history)/2
	if len(g.history)%2 == 1 && g.toMove == chess.White {
		n++
	}
	return n
}

// PieceAt returns the piece on sq, or chess.Empty.
func (g *Game) PieceAt(sq chess.Square) chess.Piece { return g.board.Get(sq) }

// IsLegal reports whether the side to move may play from to to.
func (g *Game) IsLegal(from, to chess.Square) bool {
	return engine.IsMoveLegalFor(g.board, g.toMove, from, to)
}

// LegalDestinations lists where the piece on from may move. Pieces of the
// side not on move have no destinations.
func (g *Game) LegalDestinations(from chess.Square) []chess.Square {
	if g.board.Get(from).Colour != g.toMove {
		return nil
	}
	return engine.LegalMoves(g.board, from)
}

// LegalMoves lists every legal move of the side to move.
func (g *Game) LegalMoves() []chess.Move {
	return engine.AllLegalMoves(g.board, g.toMove)
}

// Status classifies the position for the side to move.
func (g *Game) Status() engine.Status { return engine.Classify(g.board, g.toMove) }

// IsCheck reports whether the side to move is in check.
func (g *Game) IsCheck() bool { return engine.IsInCheck(g.board, g.toMove) }

// IsCheckmate reports whether the side to move is checkmated.
func (g *Game) IsCheckmate() bool { return engine.IsCheckmate(g.board, g.toMove) }

// IsStalemate reports whether the side to move is stalemated.
func (g *Game) IsStalemate() bool { return engine.IsStalemate(g.board, g.toMove) }

// IsOver reports whether the game has ended by checkmate or stalemate.
func (g *Game) IsOver() bool { return g.Status().IsOver() }

// InsufficientMaterial reports whether neither side can force mate. It is
// informational and does not end the game.
func (g *Game) InsufficientMaterial() bool { return engine.HasInsufficientMaterial(g.board) }

// Result returns the PGN-style result of the game so far.
func (g *Game) Result() string {
	switch g.Status() {
	case engine.Checkmate:
		if g.toMove == chess.White {
			return BlackWins
		}
		return WhiteWins
	case engine.Stalemate:
		return Draw
	}
	return Unfinished
}

// Commit plays move for the side to move. The board is either fully
// updated or left untouched; errors are *errors.MoveError values wrapping
// ErrGameOver or ErrIllegalMove.
func (g *Game) Commit(move chess.Move) (Record, error) {
	if g.IsOver() {
		return Record{}, g.moveError(errors.ErrGameOver, move.String())
	}
	if !engine.IsMoveLegalFor(g.board, g.toMove, move.From, move.To) {
		return Record{}, g.moveError(errors.ErrIllegalMove, move.String())
	}

	rec := Record{
		Ply:      len(g.history) + 1,
		Colour:   g.toMove,
		Move:     move,
		SAN:      notation.FormatSAN(g.board, move),
		Piece:    g.board.Get(move.From),
		Promoted: engine.IsPromotion(g.board, move),
	}
	rec.Captured = engine.ApplyMove(g.board, move)
	g.toMove = g.toMove.Opposite()
	g.history = append(g.history, rec)
	g.history[len(g.history)-1].FEN = g.FEN()
	return g.history[len(g.history)-1], nil
}

// CommitText parses move text for the side to move and commits it.
// Coordinate moves, SAN and the raw "row col row col" form are accepted.
func (g *Game) CommitText(text string) (Record, error) {
	if g.IsOver() {
		return Record{}, g.moveError(errors.ErrGameOver, text)
	}
	var (
		move chess.Move
		err  error
	)
	if notation.LooksLikeCoords(text) {
		move, err = notation.ParseCoords(text)
		if err == nil && !g.IsLegal(move.From, move.To) {
			err = errors.ErrIllegalMove
		}
	} else {
		move, err = notation.ParseMove(g.board, g.toMove, text)
	}
	if err != nil {
		return Record{}, g.moveError(err, text)
	}
	return g.Commit(move)
}

// SelectMove asks strategy for a move for the side to move without
// committing it.
func (g *Game) SelectMove(strategy search.Strategy) (chess.Move, error) {
	if g.IsOver() {
		return chess.NoMove, g.moveError(errors.ErrGameOver, "")
	}
	move, ok := strategy.SelectMove(g.board, g.toMove)
	if !ok {
		return chess.NoMove, g.moveError(errors.ErrNoLegalMove, "")
	}
	return move, nil
}

// History returns a copy of the committed moves.
func (g *Game) History() []Record {
	out := make([]Record, len(g.history))
	copy(out, g.history)
	return out
}

// LastMove returns the most recent record, if any.
func (g *Game) LastMove() (Record, bool) {
	if len(g.history) == 0 {
		return Record{}, false
	}
	return g.history[len(g.history)-1], true
}

// FEN returns the current position as a FEN string.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board, g.toMove, g.MoveNumber())
}

// StartFEN returns the position the game started from.
func (g *Game) StartFEN() string { return g.startFEN }

// StartMoveNumber returns the full-move number of the starting position.
func (g *Game) StartMoveNumber() int { return g.startMoveNumber }

func (g *Game) moveError(err error, text string) *errors.MoveError {
	return &errors.MoveError{
		Err:      err,
		GameID:   g.id,
		PlyNum:   len(g.history) + 1,
		Side:     g.toMove.String(),
		MoveText: text,
	}
}
