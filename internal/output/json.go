package output

import (
	"strings"

	"github.com/lgbarn/chess-console-go/internal/chess"
	"github.com/lgbarn/chess-console-go/internal/game"
	"github.com/lgbarn/chess-console-go/internal/match"
)

// JSONResult represents a played game in JSON format.
type JSONResult struct {
	Index      int        `json:"index"`
	ID         string     `json:"id"`
	White      string     `json:"white"`
	Black      string     `json:"black"`
	Result     string     `json:"result"`
	Reason     string     `json:"reason"`
	PlyCount   int        `json:"plyCount"`
	InitialFEN string     `json:"initialFEN"`
	FinalFEN   string     `json:"finalFEN"`
	Nodes      int64      `json:"nodes,omitempty"`
	DurationMS int64      `json:"durationMs"`
	Moves      []JSONMove `json:"moves,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	FEN        string `json:"fen"`
}

// JSONSummary tallies the games of a JSONOutput.
type JSONSummary struct {
	Games      int `json:"games"`
	WhiteWins  int `json:"whiteWins"`
	BlackWins  int `json:"blackWins"`
	Draws      int `json:"draws"`
	Unfinished int `json:"unfinished"`
}

// JSONOutput holds multiple games for batch output.
type JSONOutput struct {
	Games   []*JSONResult `json:"games"`
	Summary JSONSummary   `json:"summary"`
}

// ResultToJSON converts a played game to JSON format.
func ResultToJSON(res *match.Result) *JSONResult {
	return &JSONResult{
		Index:      res.Index,
		ID:         res.GameID,
		White:      res.White,
		Black:      res.Black,
		Result:     res.Result,
		Reason:     string(res.Reason),
		PlyCount:   res.Plies,
		InitialFEN: res.StartFEN,
		FinalFEN:   res.FinalFEN,
		Nodes:      res.Nodes,
		DurationMS: res.Duration.Milliseconds(),
		Moves:      convertRecords(res.Records, res.StartMoveNumber),
	}
}

// convertRecords converts move records to JSON, numbering White's moves.
func convertRecords(records []game.Record, startMoveNumber int) []JSONMove {
	moves := make([]JSONMove, 0, len(records))
	moveNum := max(startMoveNumber, 1)

	for _, rec := range records {
		jm := JSONMove{
			Color: strings.ToLower(rec.Colour.String()),
			SAN:   rec.SAN,
			UCI:   rec.Move.String(),
			Piece: kindName(rec.Piece.Kind),
			FEN:   rec.FEN,
		}
		if rec.Colour == chess.White {
			jm.MoveNumber = moveNum
		} else {
			moveNum++
		}
		if !rec.Captured.IsEmpty() {
			jm.Captured = kindName(rec.Captured.Kind)
		}
		if rec.Promoted {
			jm.Promotion = kindName(chess.Queen)
			jm.UCI += "q"
		}
		moves = append(moves, jm)
	}
	return moves
}

// kindName returns the piece kind as a lowercase word.
func kindName(k chess.Kind) string {
	if k == chess.NoKind {
		return ""
	}
	return strings.ToLower(k.String())
}
