package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/lgbarn/chess-console-go/internal/config"
	chesserrors "github.com/lgbarn/chess-console-go/internal/errors"
	"github.com/lgbarn/chess-console-go/internal/game"
	"github.com/lgbarn/chess-console-go/internal/match"
	"github.com/lgbarn/chess-console-go/internal/testutil"
)

// runScript plays a scripted session and returns everything it printed.
func runScript(t *testing.T, b *config.ConfigBuilder, script ...string) (string, *Session) {
	t.Helper()
	var out bytes.Buffer
	cfg := b.WithOutput(&out).Build()
	if cfg.LogFile == nil || cfg.Verbosity < 2 {
		cfg.LogFile = io.Discard
	}
	s, err := New(cfg, strings.NewReader(strings.Join(script, "\n")+"\n"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String(), s
}

func humans() *config.ConfigBuilder {
	return config.NewConfigBuilder().WithPlayers(config.Human, config.Human)
}

func TestSession_FoolsMate(t *testing.T) {
	out, s := runScript(t, humans(), "f3", "e5", "g4", "Qh4", "e4", "quit")

	testutil.AssertContains(t, out, "White: f3")
	testutil.AssertContains(t, out, "Black: Qh4#")
	testutil.AssertContains(t, out, "Checkmate! Black wins. 0-1")
	testutil.AssertContains(t, out, "game over> ")
	testutil.AssertContains(t, out, "The game is over")
	testutil.AssertEqual(t, s.Game().Ply(), 4)
}

func TestSession_RejectsBadInput(t *testing.T) {
	out, s := runScript(t, humans(), "e5", "O-O", "zz", "e2e4", "quit")

	testutil.AssertContains(t, out, "Invalid move! That move is not legal here. Try again.")
	testutil.AssertContains(t, out, "Invalid move! That move is not supported. Try again.")
	testutil.AssertContains(t, out, "Invalid move! Could not read that move. Try again.")
	testutil.AssertContains(t, out, "White: e4")
	testutil.AssertEqual(t, s.Game().Ply(), 1)
}

func TestSession_Queries(t *testing.T) {
	out, _ := runScript(t, humans(), "history", "moves e2", "moves e4", "moves", "fen", "hint", "help", "quit")

	testutil.AssertContains(t, out, "No moves yet.")
	testutil.AssertContains(t, out, "e2: e4 e3")
	testutil.AssertContains(t, out, "No legal moves from e4.")
	testutil.AssertContains(t, out, "Nf3")
	testutil.AssertContains(t, out, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1")
	testutil.AssertContains(t, out, "Hint: ")
	testutil.AssertContains(t, out, "moves [square]")
	testutil.AssertContains(t, out, "4 . . . . * . . .")
}

func TestSession_HistoryAndNewGame(t *testing.T) {
	out, s := runScript(t, humans(), "e4", "e5", "history", "new", "quit")

	testutil.AssertContains(t, out, "1. e4 e5 *")
	testutil.AssertContains(t, out, "New game.")
	testutil.AssertEqual(t, s.Game().Ply(), 0)
}

func TestSession_GridCoordinates(t *testing.T) {
	out, s := runScript(t, humans().WithUnicode(false), "6 4 4 4", "quit")
	testutil.AssertContains(t, out, "White: e4")
	testutil.AssertEqual(t, s.Game().Ply(), 1)
}

func TestSession_EngineReplies(t *testing.T) {
	b := config.NewConfigBuilder().WithPlayers(config.Human, config.Greedy)
	out, s := runScript(t, b, "e4", "quit")

	testutil.AssertContains(t, out, "White: e4")
	testutil.AssertContains(t, out, "Black: ")
	testutil.AssertEqual(t, s.Game().Ply(), 2)
}

func TestSession_RejectedMoveLogged(t *testing.T) {
	var log bytes.Buffer
	b := humans().WithVerbosity(2).WithLog(&log)
	runScript(t, b, "e4", "e8e7", "quit")

	testutil.AssertContains(t, log.String(), `rejected Black move "e8e7" at ply 2: illegal move`)
}

func TestSession_EngineStatsLogged(t *testing.T) {
	var log bytes.Buffer
	b := config.NewConfigBuilder().
		WithPlayers(config.Human, config.Minimax).
		WithDepth(1).
		WithVerbosity(2).
		WithLog(&log)
	runScript(t, b, "d4", "quit")

	testutil.AssertContains(t, log.String(), "minimax searched")
}

func TestSession_EnginesSeededLikeSelfPlay(t *testing.T) {
	b := config.NewConfigBuilder().
		WithPlayers(config.Random, config.Random).
		WithSeed(11).
		WithSelfPlay(0, 1, 8)
	_, s := runScript(t, b, "quit")

	cfg := b.Build()
	white, black, err := match.Strategies(cfg, cfg.Seed)
	testutil.AssertNoError(t, err)
	res, err := match.Play(context.Background(), game.New(), white, black, cfg.SelfPlay.MaxPlies)
	testutil.AssertNoError(t, err)

	sans := make([]string, 0, s.Game().Ply())
	for _, rec := range s.Game().History() {
		sans = append(sans, rec.SAN)
	}
	testutil.AssertEqual(t, sans, res.SANs(), "console and self-play moves for the same seed")
}

func TestSession_EnginesStopAtMoveLimit(t *testing.T) {
	b := config.NewConfigBuilder().
		WithPlayers(config.Random, config.Random).
		WithSeed(3).
		WithSelfPlay(0, 1, 6)
	out, s := runScript(t, b, "history", "quit")

	if s.Game().IsOver() {
		t.Skip("seeded game ended before the move limit")
	}
	testutil.AssertContains(t, out, "Move limit of 6 plies reached.")
	testutil.AssertEqual(t, s.Game().Ply(), 6)
	testutil.AssertContains(t, out, "3.")
}

func TestSession_Draws(t *testing.T) {
	out, _ := runScript(t, humans().WithStartFEN("7k/8/5QK1/8/8/8/8/8 w - - 0 1"), "Qf7", "quit")
	testutil.AssertContains(t, out, "Stalemate. The game is drawn. 1/2-1/2")

	out, _ = runScript(t, humans().WithStartFEN("4k3/8/8/8/8/8/3p4/4K3 w - - 0 1"), "Kxd2", "quit")
	testutil.AssertContains(t, out, "Insufficient material")
}

func TestSession_EndOfInput(t *testing.T) {
	out, _ := runScript(t, humans())
	testutil.AssertContains(t, out, "White to move> ")
}

func TestSession_Cancelled(t *testing.T) {
	cfg := humans().WithOutput(io.Discard).Build()
	s, err := New(cfg, strings.NewReader("e4\n"))
	testutil.AssertNoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}

func TestNew_Errors(t *testing.T) {
	cfg := humans().WithOutput(io.Discard).WithStartFEN("8/8/8").Build()
	if _, err := New(cfg, strings.NewReader("")); !errors.Is(err, chesserrors.ErrInvalidFEN) {
		t.Errorf("bad FEN: err = %v, want ErrInvalidFEN", err)
	}

	cfg = humans().WithOutput(io.Discard).WithDepth(0).Build()
	if _, err := New(cfg, strings.NewReader("")); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("depth 0: err = %v, want ErrInvalidConfig", err)
	}
}
