package match

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lgbarn/chess-console-go/internal/chess"
	"github.com/lgbarn/chess-console-go/internal/config"
	"github.com/lgbarn/chess-console-go/internal/errors"
	"github.com/lgbarn/chess-console-go/internal/game"
	"github.com/lgbarn/chess-console-go/internal/search"
	"github.com/lgbarn/chess-console-go/internal/worker"
)

// NewGame starts a game from fen, or from the initial position when fen is empty.
func NewGame(fen string) (*game.Game, error) {
	if fen == "" {
		return game.New(), nil
	}
	g, err := game.NewFromFEN(fen)
	if err != nil {
		return nil, errors.Wrap(err, "start position")
	}
	return g, nil
}

// Strategies builds a fresh strategy pair for one game. Strategies keep
// per-search state, so every concurrently played game needs its own pair.
// A zero seed leaves Random players time-seeded.
func Strategies(cfg *config.Config, seed int64) (white, black search.Strategy, err error) {
	white, err = strategyFor(cfg.Players.White, cfg.Depth, sideSeed(seed, 1))
	if err != nil {
		return nil, nil, fmt.Errorf("white: %w", err)
	}
	black, err = strategyFor(cfg.Players.Black, cfg.Depth, sideSeed(seed, 2))
	if err != nil {
		return nil, nil, fmt.Errorf("black: %w", err)
	}
	return white, black, nil
}

// Engines builds the strategy of every engine side in cfg, seeded as
// Strategies seeds them. Human sides are absent from the map.
func Engines(cfg *config.Config, seed int64) (map[chess.Colour]search.Strategy, error) {
	engines := make(map[chess.Colour]search.Strategy, 2)
	for colour, side := range map[chess.Colour]int64{chess.White: 1, chess.Black: 2} {
		kind := cfg.Players.For(colour)
		if !kind.IsEngine() {
			continue
		}
		s, err := strategyFor(kind, cfg.Depth, sideSeed(seed, side))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", strings.ToLower(colour.String()), err)
		}
		engines[colour] = s
	}
	return engines, nil
}

func strategyFor(kind config.PlayerKind, depth int, seed int64) (search.Strategy, error) {
	if !kind.IsEngine() {
		return nil, fmt.Errorf("%s player cannot play unattended: %w", kind, errors.ErrInvalidConfig)
	}
	return search.New(string(kind), depth, seed)
}

func sideSeed(seed, side int64) int64 {
	if seed == 0 {
		return 0
	}
	return seed*2 + side
}

// gameSeed derives the seed of game index from the configured base seed.
func gameSeed(base int64, index int) int64 {
	if base == 0 {
		return 0
	}
	return base + int64(index)
}

// RunSelfPlay plays cfg.SelfPlay.Games engine games on cfg.SelfPlay.Workers
// goroutines and returns their results ordered by game index. With a
// non-zero cfg.Seed the batch is reproducible regardless of worker count.
// Cancelling ctx skips games not yet started and stops running ones at
// their next ply.
func RunSelfPlay(ctx context.Context, cfg *config.Config) ([]*Result, error) {
	if _, _, err := Strategies(cfg, 0); err != nil {
		return nil, err
	}
	if _, err := NewGame(cfg.StartFEN); err != nil {
		return nil, err
	}

	sp := cfg.SelfPlay
	pool := worker.NewPool(sp.Workers, sp.Workers*2, func(item worker.WorkItem) worker.ProcessResult {
		pr := worker.ProcessResult{Game: item.Game, Index: item.Index}
		white, black, err := Strategies(cfg, item.Seed)
		if err != nil {
			pr.Error = err
			return pr
		}
		res, err := Play(ctx, item.Game, white, black, sp.MaxPlies)
		res.Index = item.Index
		pr.Outcome, pr.Error = res, errors.Wrapf(err, "game %d", item.Index+1)
		return pr
	})
	pool.Start()
	cfg.Logf(1, "playing %d games on %d workers", sp.Games, pool.NumWorkers())
	stop := context.AfterFunc(ctx, pool.Stop)
	defer stop()

	go func() {
		defer pool.Close()
		for i := 0; i < sp.Games; i++ {
			if ctx.Err() != nil {
				return
			}
			g, _ := NewGame(cfg.StartFEN)
			pool.Submit(worker.WorkItem{Game: g, Index: i, Seed: gameSeed(cfg.Seed, i)})
		}
	}()

	results := make([]*Result, 0, sp.Games)
	var firstErr error
	for pr := range pool.Results() {
		if pr.Error != nil && firstErr == nil {
			firstErr = pr.Error
		}
		res, ok := pr.Outcome.(*Result)
		if !ok {
			continue
		}
		results = append(results, res)
		cfg.Logf(1, "game %d: %s %s (%s, %d plies)", res.Index+1, res.Result, res.Reason, res.GameID, res.Plies)
		cfg.Logf(2, "game %d searched %d nodes in %v", res.Index+1, res.Nodes, res.Duration)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	if firstErr == nil {
		firstErr = ctx.Err()
	}
	return results, firstErr
}

// Tally counts results by outcome.
type Tally struct {
	Games      int
	WhiteWins  int
	BlackWins  int
	Draws      int
	Unfinished int
}

// Summarize tallies results.
func Summarize(results []*Result) Tally {
	t := Tally{Games: len(results)}
	for _, r := range results {
		switch r.Result {
		case game.WhiteWins:
			t.WhiteWins++
		case game.BlackWins:
			t.BlackWins++
		case game.Draw:
			t.Draws++
		default:
			t.Unfinished++
		}
	}
	return t
}
