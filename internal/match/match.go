// Package match plays engine-versus-engine games, singly or as a batch
// spread over a worker pool.
package match

import (
	"context"
	"time"

	"github.com/lgbarn/chess-console-go/internal/chess"
	"github.com/lgbarn/chess-console-go/internal/engine"
	"github.com/lgbarn/chess-console-go/internal/game"
	"github.com/lgbarn/chess-console-go/internal/search"
)

// Reason explains why a game stopped.
type Reason string

const (
	ReasonCheckmate    Reason = "checkmate"
	ReasonStalemate    Reason = "stalemate"
	ReasonInsufficient Reason = "insufficient material"
	ReasonMoveLimit    Reason = "move limit"
	ReasonCancelled    Reason = "cancelled"
)

// Result is the summary of one played game.
type Result struct {
	Index           int
	GameID          string
	White           string
	Black           string
	Result          string
	Reason          Reason
	Plies           int
	Records         []game.Record
	StartFEN        string
	StartMoveNumber int
	FinalFEN        string
	Nodes           int64 // positions searched by both engines
	Duration        time.Duration
}

// SANs returns the moves of the game in SAN.
func (r *Result) SANs() []string {
	out := make([]string, len(r.Records))
	for i, rec := range r.Records {
		out[i] = rec.SAN
	}
	return out
}

// Play runs g with white and black choosing every move. The game stops at
// checkmate, stalemate, a position with insufficient material, or once
// maxPlies plies have been played in this call. A cancelled ctx returns
// the partial result together with ctx.Err().
func Play(ctx context.Context, g *game.Game, white, black search.Strategy, maxPlies int) (*Result, error) {
	start := time.Now()
	res := &Result{
		GameID:          g.ID(),
		White:           white.Name(),
		Black:           black.Name(),
		StartFEN:        g.StartFEN(),
		StartMoveNumber: g.StartMoveNumber(),
	}

	var err error
	for plies := 0; ; plies++ {
		if res.Reason = stopReason(g, plies, maxPlies); res.Reason != "" {
			break
		}
		if err = ctx.Err(); err != nil {
			res.Reason = ReasonCancelled
			break
		}

		player := white
		if g.ToMove() == chess.Black {
			player = black
		}
		var move chess.Move
		if move, err = g.SelectMove(player); err != nil {
			break
		}
		if r, ok := player.(search.Reporter); ok {
			res.Nodes += r.LastStats().Nodes
		}
		if _, err = g.Commit(move); err != nil {
			break
		}
	}

	res.Records = g.History()
	res.Plies = len(res.Records)
	res.FinalFEN = g.FEN()
	res.Result = g.Result()
	if res.Reason == ReasonInsufficient {
		res.Result = game.Draw
	}
	res.Duration = time.Since(start)
	return res, err
}

func stopReason(g *game.Game, plies, maxPlies int) Reason {
	switch g.Status() {
	case engine.Checkmate:
		return ReasonCheckmate
	case engine.Stalemate:
		return ReasonStalemate
	}
	if g.InsufficientMaterial() {
		return ReasonInsufficient
	}
	if plies >= maxPlies {
		return ReasonMoveLimit
	}
	return ""
}
