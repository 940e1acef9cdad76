package config

import "fmt"

// ResultFormat selects how self-play results are written.
type ResultFormat string

const (
	TextResults ResultFormat = "text" // one summary line per game
	PGNResults  ResultFormat = "pgn"
	JSONResults ResultFormat = "json"
	// JSONLinesResults writes one JSON object per game as it finishes.
	JSONLinesResults ResultFormat = "jsonl"
)

// ResultFormats lists the accepted result formats.
var ResultFormats = []ResultFormat{TextResults, PGNResults, JSONResults, JSONLinesResults}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Unicode draws pieces with chess glyphs instead of letters
	Unicode bool

	// ShowGrid adds the raw row/column indices used by coordinate input
	ShowGrid bool

	// MaxLineLength is the wrap width for move history
	MaxLineLength int

	// ResultFormat is the self-play result format
	ResultFormat ResultFormat
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength: 80,
		ResultFormat:  TextResults,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength < 20 {
		return fmt.Errorf("line length %d is below 20: %w", o.MaxLineLength, errInvalid)
	}
	for _, f := range ResultFormats {
		if o.ResultFormat == f {
			return nil
		}
	}
	return fmt.Errorf("unknown result format %q: %w", o.ResultFormat, errInvalid)
}
