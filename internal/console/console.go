// Package console runs an interactive game on a line-oriented terminal.
// Humans type moves and commands; engine players move on their own turn.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-console-go/internal/chess"
	"github.com/lgbarn/chess-console-go/internal/config"
	"github.com/lgbarn/chess-console-go/internal/engine"
	"github.com/lgbarn/chess-console-go/internal/game"
	"github.com/lgbarn/chess-console-go/internal/match"
	"github.com/lgbarn/chess-console-go/internal/output"
	"github.com/lgbarn/chess-console-go/internal/search"
)

// Session is one console run. It may play several games through "new".
type Session struct {
	cfg     *config.Config
	in      *bufio.Scanner
	out     io.Writer
	game    *game.Game
	players map[chess.Colour]search.Strategy // nil entry: human
	plies   int                              // plies played by engines in a row
	noted   bool                             // insufficient material announced
	quit    bool
}

// New creates a session reading commands from in and writing to
// cfg.OutputFile.
func New(cfg *config.Config, in io.Reader) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	players, err := match.Engines(cfg, cfg.Seed)
	if err != nil {
		return nil, err
	}
	s := &Session{
		cfg:     cfg,
		in:      bufio.NewScanner(in),
		out:     cfg.OutputFile,
		players: players,
	}
	if err := s.newGame(); err != nil {
		return nil, err
	}
	return s, nil
}

// Game returns the game in progress.
func (s *Session) Game() *game.Game { return s.game }

func (s *Session) newGame() error {
	g, err := match.NewGame(s.cfg.StartFEN)
	if err != nil {
		return err
	}
	s.game = g
	s.plies = 0
	s.noted = false
	s.cfg.Logf(2, "game %s from %s", g.ID(), g.StartFEN())
	return nil
}

func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) unattended() bool {
	return s.players[chess.White] != nil && s.players[chess.Black] != nil
}

// Run plays until the input ends, "quit" is entered or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	s.printf("%s vs %s. Type \"help\" for commands.\n", s.cfg.Players.White, s.cfg.Players.Black)
	s.showBoard(nil)
	s.announce()

	for !s.quit {
		if err := ctx.Err(); err != nil {
			return err
		}
		if strategy := s.players[s.game.ToMove()]; strategy != nil && !s.game.IsOver() && !s.stalled() {
			if err := s.engineTurn(strategy); err != nil {
				return err
			}
			continue
		}

		s.printf("%s> ", s.prompt())
		if !s.in.Scan() {
			s.printf("\n")
			return s.in.Err()
		}
		s.dispatch(strings.TrimSpace(s.in.Text()))
	}
	return nil
}

// stalled reports that an engine-only game reached the ply limit or a
// position neither side can win, after which the console waits for input.
func (s *Session) stalled() bool {
	if !s.unattended() {
		return false
	}
	return s.plies >= s.cfg.SelfPlay.MaxPlies || s.game.InsufficientMaterial()
}

func (s *Session) prompt() string {
	if s.game.IsOver() {
		return "game over"
	}
	return s.game.ToMove().String() + " to move"
}

func (s *Session) engineTurn(strategy search.Strategy) error {
	move, err := s.game.SelectMove(strategy)
	if err != nil {
		return err
	}
	if r, ok := strategy.(search.Reporter); ok {
		st := r.LastStats()
		s.cfg.Logf(2, "%s searched %d nodes, score %d", strategy.Name(), st.Nodes, st.Score)
	}
	rec, err := s.game.Commit(move)
	if err != nil {
		return err
	}
	s.plies++
	s.played(rec)
	if s.unattended() && s.plies >= s.cfg.SelfPlay.MaxPlies && !s.game.IsOver() {
		s.printf("Move limit of %d plies reached.\n", s.cfg.SelfPlay.MaxPlies)
	}
	return nil
}

// played reports a committed move and the resulting position.
func (s *Session) played(rec game.Record) {
	s.printf("%s: %s\n", rec.Colour, rec.SAN)
	s.showBoard(nil)
	s.announce()
}

func (s *Session) showBoard(highlight []chess.Square) {
	opts := output.BoardOptions{
		Unicode:   s.cfg.Output.Unicode,
		ShowGrid:  s.cfg.Output.ShowGrid,
		Highlight: highlight,
	}
	output.RenderBoard(s.out, s.game.Board(), opts) //nolint:errcheck // console output
}

// announce reports check, the end of the game and insufficient material.
func (s *Session) announce() {
	switch s.game.Status() {
	case engine.Check:
		s.printf("Check!\n")
	case engine.Checkmate:
		winner := s.game.ToMove().Opposite()
		s.printf("Checkmate! %s wins. %s\n", winner, s.game.Result())
		s.cfg.Logf(1, "game %s: %s", s.game.ID(), s.game.Result())
		return
	case engine.Stalemate:
		s.printf("Stalemate. The game is drawn. %s\n", s.game.Result())
		s.cfg.Logf(1, "game %s: %s", s.game.ID(), s.game.Result())
		return
	}
	if !s.noted && s.game.InsufficientMaterial() {
		s.noted = true
		s.printf("Insufficient material: neither side can force mate.\n")
	}
}
