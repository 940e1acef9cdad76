// Package notation reads and writes move text for the console: coordinate
// moves, standard algebraic notation and raw grid coordinates.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-console-go/internal/chess"
	"github.com/lgbarn/chess-console-go/internal/engine"
	"github.com/lgbarn/chess-console-go/internal/errors"
)

// isFile returns true if c is a file letter a-h.
func isFile(c byte) bool {
	return c >= chess.FileBase && c < chess.FileBase+chess.BoardSize
}

// isRank returns true if c is a rank digit 1-8.
func isRank(c byte) bool {
	return c >= chess.RankBase && c < chess.RankBase+chess.BoardSize
}

// isSeparator returns true for the characters allowed between the origin
// and destination of a move.
func isSeparator(c byte) bool {
	return c == 'x' || c == 'X' || c == ':' || c == '-'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// pieceFromLetter maps an uppercase SAN piece letter to a kind. Lowercase
// 'b' is a file, never a bishop.
func pieceFromLetter(c byte) chess.Kind {
	switch c {
	case 'K':
		return chess.King
	case 'Q':
		return chess.Queen
	case 'R':
		return chess.Rook
	case 'B':
		return chess.Bishop
	case 'N':
		return chess.Knight
	}
	return chess.NoKind
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(text string) (chess.Square, error) {
	s := strings.TrimSpace(text)
	if len(s) != 2 {
		return chess.NoSquare, &errors.ParseError{Err: errors.ErrParseFailure, Input: text, Expected: "square like e4"}
	}
	if !isFile(s[0]) {
		return chess.NoSquare, &errors.ParseError{Err: errors.ErrParseFailure, Input: text, Column: 1, Expected: "file a-h", Got: strconv.QuoteRune(rune(s[0]))}
	}
	if !isRank(s[1]) {
		return chess.NoSquare, &errors.ParseError{Err: errors.ErrParseFailure, Input: text, Column: 2, Expected: "rank 1-8", Got: strconv.QuoteRune(rune(s[1]))}
	}
	sq, _ := chess.SquareFromAlgebraic(s[0], s[1])
	return sq, nil
}

// IsCastling reports whether text is a castling token such as O-O, 0-0-0
// or o-o, ignoring trailing check marks.
func IsCastling(text string) bool {
	s := strings.TrimRight(strings.TrimSpace(text), "+#!?")
	n := 0
	for i := 0; i < len(s); i++ {
		switch {
		case isCastlingChar(s[i]):
			n++
		case s[i] == '-' && i > 0 && i < len(s)-1:
		default:
			return false
		}
	}
	return n == 2 || n == 3
}

// pattern is the decoded shape of a move before it is matched against the
// legal moves of a position. Zero fields are unconstrained.
type pattern struct {
	kind      chess.Kind
	fromFile  byte
	fromRank  byte
	to        chess.Square
	promotion chess.Kind
}

// decode splits move text into its parts. Whitespace is ignored so that
// "e2 e4" reads like "e2e4".
func decode(text string) (pattern, error) {
	var p pattern
	s := strings.Join(strings.Fields(text), "")
	s = strings.TrimRight(s, "+#!?")
	if s == "" {
		return p, &errors.ParseError{Err: errors.ErrParseFailure, Input: text, Expected: "a move"}
	}
	if IsCastling(s) {
		return p, &errors.ParseError{Err: errors.ErrUnsupported, Input: text, Got: "castling"}
	}

	fail := func(col int, expected string) (pattern, error) {
		got := "end of input"
		if col <= len(s) {
			got = strconv.QuoteRune(rune(s[col-1]))
		}
		return pattern{}, &errors.ParseError{Err: errors.ErrParseFailure, Input: text, Column: col, Expected: expected, Got: got}
	}

	if kind := pieceFromLetter(s[0]); kind != chess.NoKind {
		p.kind = kind
		s = s[1:]
	}

	// Promotion suffix: "=Q", "Q" or "q" after the destination rank.
	if i := strings.IndexByte(s, '='); i >= 0 {
		if i+2 != len(s) {
			return fail(i+1, "promotion piece after '='")
		}
		p.promotion = chess.KindFromLetter(s[i+1])
		s = s[:i]
		if p.promotion == chess.NoKind || p.promotion == chess.Pawn || p.promotion == chess.King {
			return fail(i+2, "promotion piece Q, R, B or N")
		}
	} else if n := len(s); n >= 3 && isRank(s[n-2]) {
		if k := chess.KindFromLetter(s[n-1]); k != chess.NoKind && k != chess.Pawn && k != chess.King {
			p.promotion = k
			s = s[:n-1]
		}
	}

	n := len(s)
	if n < 2 {
		return fail(n+1, "destination square")
	}
	if !isFile(s[n-2]) {
		return fail(n-1, "destination file a-h")
	}
	if !isRank(s[n-1]) {
		return fail(n, "destination rank 1-8")
	}
	p.to, _ = chess.SquareFromAlgebraic(s[n-2], s[n-1])

	rest := strings.TrimRightFunc(s[:n-2], func(r rune) bool { return r < 128 && isSeparator(byte(r)) })
	if len(rest) > 0 && isFile(rest[0]) {
		p.fromFile = rest[0]
		rest = rest[1:]
	}
	if len(rest) > 0 && isRank(rest[0]) {
		p.fromRank = rest[0]
		rest = rest[1:]
	}
	if rest != "" {
		return fail(1, "piece letter or origin square")
	}

	// Without a piece letter a partial origin can only belong to a pawn.
	if p.kind == chess.NoKind && (p.fromFile == 0 || p.fromRank == 0) {
		p.kind = chess.Pawn
	}
	return p, nil
}

// matches reports whether a legal move fits the pattern.
func (p pattern) matches(board *chess.Board, m chess.Move) bool {
	if m.To != p.to {
		return false
	}
	if p.kind != chess.NoKind && board.Get(m.From).Kind != p.kind {
		return false
	}
	if p.fromFile != 0 && m.From.File() != p.fromFile {
		return false
	}
	if p.fromRank != 0 && m.From.Rank() != p.fromRank {
		return false
	}
	if p.promotion != chess.NoKind && !engine.IsPromotion(board, m) {
		return false
	}
	return true
}

// ParseMove reads move text for colour and resolves it to the single legal
// move it names. Coordinate forms (e2e4, e2-e4, e2 e4, Ng1f3) and SAN
// (Nf3, exd5, e8=Q, Qh4#) are accepted. Castling is recognised and
// rejected with ErrUnsupported, and promotion to anything but a queen is
// rejected the same way since pawns always queen.
func ParseMove(board *chess.Board, colour chess.Colour, text string) (chess.Move, error) {
	p, err := decode(text)
	if err != nil {
		return chess.NoMove, err
	}
	if p.promotion != chess.NoKind && p.promotion != chess.Queen {
		return chess.NoMove, &errors.ParseError{Err: errors.ErrUnsupported, Input: text, Got: "promotion to " + strings.ToLower(p.promotion.String())}
	}

	var found []chess.Move
	for _, m := range engine.AllLegalMoves(board, colour) {
		if p.matches(board, m) {
			found = append(found, m)
		}
	}

	switch len(found) {
	case 0:
		return chess.NoMove, fmt.Errorf("%s has no legal move %q: %w", colour, strings.TrimSpace(text), errors.ErrIllegalMove)
	case 1:
		return found[0], nil
	}
	names := make([]string, len(found))
	for i, m := range found {
		names[i] = m.String()
	}
	return chess.NoMove, &errors.ParseError{Err: errors.ErrAmbiguousMove, Input: text, Got: strings.Join(names, ", ")}
}

// ParseCoords reads four grid coordinates "row col row col" as used by the
// grid display: row 0 is rank 8 and column 0 is file a.
func ParseCoords(text string) (chess.Move, error) {
	fields := strings.Fields(text)
	if len(fields) != 4 {
		return chess.NoMove, &errors.ParseError{Err: errors.ErrParseFailure, Input: text, Expected: "four numbers", Got: strconv.Itoa(len(fields))}
	}
	var v [4]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 || n >= chess.BoardSize {
			return chess.NoMove, &errors.ParseError{Err: errors.ErrParseFailure, Input: text, Column: i + 1, Expected: "number 0-7", Got: strconv.Quote(f)}
		}
		v[i] = n
	}
	return chess.Move{From: chess.Sq(v[0], v[1]), To: chess.Sq(v[2], v[3])}, nil
}

// LooksLikeCoords reports whether text is four whitespace-separated
// integers, the input shape ParseCoords expects.
func LooksLikeCoords(text string) bool {
	fields := strings.Fields(text)
	if len(fields) != 4 {
		return false
	}
	for _, f := range fields {
		if _, err := strconv.Atoi(f); err != nil {
			return false
		}
	}
	return true
}
