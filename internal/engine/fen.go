// Package engine provides chess move validation and board manipulation.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-console-go/internal/chess"
	"github.com/lgbarn/chess-console-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is a board together with the side to move and the move number.
// Castling and en passant fields of a FEN string are accepted but carry no
// meaning here, since neither move is supported.
type Position struct {
	Board      *chess.Board
	ToMove     chess.Colour
	MoveNumber int
}

// NewInitialPosition creates the standard starting position with White to move.
func NewInitialPosition() Position {
	return Position{Board: chess.NewInitialBoard(), ToMove: chess.White, MoveNumber: 1}
}

// ParseFEN creates a position from a FEN string. Only the piece placement
// field is required; side to move defaults to White.
func ParseFEN(fen string) (Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return Position{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	pos := Position{Board: chess.NewBoard(), ToMove: chess.White, MoveNumber: 1}

	if err := parsePiecePositions(pos.Board, parts[0]); err != nil {
		return Position{}, err
	}

	if err := parseSideToMove(&pos, parts); err != nil {
		return Position{}, err
	}

	if len(parts) >= 6 {
		if n, err := strconv.Atoi(parts[5]); err == nil && n > 0 {
			pos.MoveNumber = n
		}
	}

	return pos, nil
}

// MustParseFEN is ParseFEN for known-good literals; it panics on error.
func MustParseFEN(fen string) Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			case c > unicode.MaxASCII:
				return fmt.Errorf("invalid piece character: %q: %w", c, errors.ErrInvalidFEN)
			default:
				kind := chess.KindFromLetter(byte(c))
				if kind == chess.NoKind {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col >= chess.BoardSize {
					return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(chess.Square{Row: row, Col: col}, chess.Piece{Kind: kind, Colour: colour})
				col++
			}
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// FEN converts the position to a FEN string. Castling and en passant are
// always written as "-" and the halfmove clock as 0.
func (p Position) FEN() string {
	return BoardToFEN(p.Board, p.ToMove, p.MoveNumber)
}

// BoardToFEN converts a board, side to move and move number to a FEN string.
func BoardToFEN(board *chess.Board, toMove chess.Colour, moveNumber int) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	if moveNumber < 1 {
		moveNumber = 1
	}
	fmt.Fprintf(&sb, " - - 0 %d", moveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
