package console

import (
	"sort"
	"strings"

	"github.com/lgbarn/chess-console-go/internal/errors"
	"github.com/lgbarn/chess-console-go/internal/notation"
	"github.com/lgbarn/chess-console-go/internal/output"
	"github.com/lgbarn/chess-console-go/internal/search"
)

type command struct {
	usage string
	help  string
	run   func(s *Session, args []string)
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"help":    {"help", "show this list", (*Session).cmdHelp},
		"board":   {"board", "show the board", func(s *Session, _ []string) { s.showBoard(nil) }},
		"moves":   {"moves [square]", "list legal moves, or mark those of one piece", (*Session).cmdMoves},
		"history": {"history", "show the moves played so far", (*Session).cmdHistory},
		"fen":     {"fen", "show the position as FEN", func(s *Session, _ []string) { s.printf("%s\n", s.game.FEN()) }},
		"hint":    {"hint", "ask the minimax engine for a move", (*Session).cmdHint},
		"new":     {"new", "start a new game", (*Session).cmdNew},
		"quit":    {"quit", "leave the console", func(s *Session, _ []string) { s.quit = true }},
	}
	commands["?"] = commands["help"]
	commands["exit"] = commands["quit"]
}

// dispatch runs a command, or commits the line as a move.
func (s *Session) dispatch(line string) {
	if line == "" {
		return
	}
	fields := strings.Fields(line)
	if cmd, ok := commands[strings.ToLower(fields[0])]; ok {
		cmd.run(s, fields[1:])
		return
	}

	rec, err := s.game.CommitText(line)
	if err != nil {
		s.printf("Invalid move! %s. Try again.\n", describe(err))
		var moveErr *errors.MoveError
		if errors.As(err, &moveErr) {
			s.cfg.Logf(2, "rejected %s move %q at ply %d: %v", moveErr.Side, moveErr.MoveText, moveErr.PlyNum, moveErr.Err)
		} else {
			s.cfg.Logf(2, "%v", err)
		}
		return
	}
	s.plies = 0
	s.played(rec)
}

// describe turns a move error into a short player-facing reason.
func describe(err error) string {
	switch {
	case errors.Is(err, errors.ErrGameOver):
		return "The game is over; type \"new\" to play again"
	case errors.Is(err, errors.ErrUnsupported):
		return "That move is not supported"
	case errors.Is(err, errors.ErrAmbiguousMove):
		return "More than one piece can make that move"
	case errors.Is(err, errors.ErrParseFailure):
		return "Could not read that move"
	}
	return "That move is not legal here"
}

func (s *Session) cmdHelp(_ []string) {
	names := make([]string, 0, len(commands))
	for name, cmd := range commands {
		if strings.HasPrefix(cmd.usage, name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	s.printf("Enter a move as e2e4, e2 e4, Nf3, exd5, e8=Q or \"row col row col\" (0-7).\n")
	for _, name := range names {
		s.printf("  %-16s %s\n", commands[name].usage, commands[name].help)
	}
}

func (s *Session) cmdMoves(args []string) {
	if len(args) == 0 {
		board := s.game.Board()
		sans := make([]string, 0, 32)
		for _, m := range s.game.LegalMoves() {
			sans = append(sans, notation.FormatSAN(board, m))
		}
		if len(sans) == 0 {
			s.printf("No legal moves.\n")
			return
		}
		s.printf("%s\n", strings.Join(sans, " "))
		return
	}

	from, err := notation.ParseSquare(args[0])
	if err != nil {
		s.printf("Could not read square %q.\n", args[0])
		return
	}
	dests := s.game.LegalDestinations(from)
	if len(dests) == 0 {
		s.printf("No legal moves from %s.\n", from)
		return
	}
	names := make([]string, len(dests))
	for i, sq := range dests {
		names[i] = sq.String()
	}
	s.showBoard(dests)
	s.printf("%s: %s\n", from, strings.Join(names, " "))
}

func (s *Session) cmdHistory(_ []string) {
	records := s.game.History()
	if len(records) == 0 {
		s.printf("No moves yet.\n")
		return
	}
	output.WriteHistory(s.out, records, s.game.StartMoveNumber(), s.game.Result(), s.cfg.Output.MaxLineLength)
}

func (s *Session) cmdHint(_ []string) {
	mm := &search.Minimax{Depth: s.cfg.Depth}
	move, err := s.game.SelectMove(mm)
	if err != nil {
		s.printf("No hint: %s.\n", describe(err))
		return
	}
	st := mm.LastStats()
	s.printf("Hint: %s (score %d, %d nodes)\n", notation.FormatSAN(s.game.Board(), move), st.Score, st.Nodes)
}

func (s *Session) cmdNew(_ []string) {
	if err := s.newGame(); err != nil {
		s.printf("Cannot start a new game: %v\n", err)
		return
	}
	s.printf("New game.\n")
	s.showBoard(nil)
	s.announce()
}
