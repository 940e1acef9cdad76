package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-console-go/internal/config"
	"github.com/lgbarn/chess-console-go/internal/engine"
	"github.com/lgbarn/chess-console-go/internal/match"
)

// ResultWriter is the interface for writing played games to output.
// Implementations handle different formats (text, PGN, JSON, JSON lines).
type ResultWriter interface {
	// WriteResult writes a single game.
	WriteResult(res *match.Result) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. Batch and summary writers emit their
	// pending output here.
	Close() error
}

// NewResultWriter returns the writer selected by cfg.Output.ResultFormat,
// writing to cfg.OutputFile.
func NewResultWriter(cfg *config.Config) ResultWriter {
	switch cfg.Output.ResultFormat {
	case config.PGNResults:
		return NewPGNWriter(cfg.OutputFile, cfg.Output.MaxLineLength)
	case config.JSONResults:
		return NewJSONWriter(cfg.OutputFile)
	case config.JSONLinesResults:
		return NewJSONWriterSingle(cfg.OutputFile)
	}
	return NewTextWriter(cfg.OutputFile)
}

// TextWriter writes one summary line per game and a tally on Close.
type TextWriter struct {
	w       io.Writer
	results []*match.Result
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteResult writes a one-line summary of res.
func (tw *TextWriter) WriteResult(res *match.Result) error {
	tw.results = append(tw.results, res)
	_, err := fmt.Fprintf(tw.w, "game %d %s: %s vs %s %s (%s, %d plies)\n",
		res.Index+1, res.GameID, res.White, res.Black, res.Result, res.Reason, res.Plies)
	return err
}

// Flush is a no-op; lines are written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close writes the tally of every game seen.
func (tw *TextWriter) Close() error {
	t := match.Summarize(tw.results)
	_, err := fmt.Fprintf(tw.w, "%d games: white %d, black %d, drawn %d, unfinished %d\n",
		t.Games, t.WhiteWins, t.BlackWins, t.Draws, t.Unfinished)
	return err
}

// PGNWriter writes games in PGN format.
type PGNWriter struct {
	w             io.Writer
	maxLineLength int
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer, maxLineLength int) *PGNWriter {
	return &PGNWriter{w: w, maxLineLength: maxLineLength}
}

// WriteResult writes the tag section and move text of res.
func (pw *PGNWriter) WriteResult(res *match.Result) error {
	tags := [][2]string{
		{"Event", "Self-play"},
		{"Site", "?"},
		{"Date", "????.??.??"},
		{"Round", fmt.Sprint(res.Index + 1)},
		{"White", res.White},
		{"Black", res.Black},
		{"Result", res.Result},
	}
	if res.StartFEN != "" && res.StartFEN != engine.NewInitialPosition().FEN() {
		tags = append(tags, [2]string{"SetUp", "1"}, [2]string{"FEN", res.StartFEN})
	}
	tags = append(tags, [2]string{"Termination", string(res.Reason)})

	var sb strings.Builder
	for _, tag := range tags {
		fmt.Fprintf(&sb, "[%s \"%s\"]\n", tag[0], escapeTagValue(tag[1]))
	}
	sb.WriteByte('\n')
	WriteHistory(&sb, res.Records, res.StartMoveNumber, res.Result, pw.maxLineLength)
	sb.WriteByte('\n')

	_, err := io.WriteString(pw.w, sb.String())
	return err
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// Flush flushes the PGN writer (no-op for PGN as it writes immediately).
func (pw *PGNWriter) Flush() error {
	return nil
}

// Close closes the PGN writer.
func (pw *PGNWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON document on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*match.Result
	single bool // write each game immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches games into one document.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately
// as one compact line.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteResult buffers a game for JSON output (or writes it in single mode).
func (jw *JSONWriter) WriteResult(res *match.Result) error {
	if jw.single {
		return jw.encode(ResultToJSON(res))
	}
	jw.games = append(jw.games, res)
	return nil
}

// Flush writes all buffered games with their tally.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	out := &JSONOutput{
		Games: make([]*JSONResult, 0, len(jw.games)),
	}
	for _, res := range jw.games {
		out.Games = append(out.Games, ResultToJSON(res))
	}
	t := match.Summarize(jw.games)
	out.Summary = JSONSummary{
		Games:      t.Games,
		WhiteWins:  t.WhiteWins,
		BlackWins:  t.BlackWins,
		Draws:      t.Draws,
		Unfinished: t.Unfinished,
	}

	err := jw.encode(out)
	jw.games = jw.games[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	if !jw.single {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
