// Package output formats boards, move histories and game results.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-console-go/internal/chess"
	"github.com/lgbarn/chess-console-go/internal/game"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, adding a space separator or a line break as needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line if anything was written on it.
func (o *OutputWriter) NewLine() {
	if o.lineLength == 0 {
		return
	}
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteHistory writes records as numbered move text ("1. e4 e5 2. Nf3"),
// wrapped at maxLineLength. A history starting with Black opens with
// "N...". A non-empty result is appended as the final token.
func WriteHistory(w io.Writer, records []game.Record, startMoveNumber int, result string, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)

	moveNum := max(startMoveNumber, 1)
	for i, rec := range records {
		if rec.Colour == chess.White {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(rec.SAN)
		if rec.Colour == chess.Black {
			moveNum++
		}
	}

	if result != "" {
		ow.Write(result)
	}
	ow.NewLine()
}
