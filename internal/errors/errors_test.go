package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrParseFailure", ErrParseFailure, ErrParseFailure},
		{"ErrAmbiguousMove", ErrAmbiguousMove, ErrAmbiguousMove},
		{"ErrUnsupported", ErrUnsupported, ErrUnsupported},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrNoLegalMove", ErrNoLegalMove, ErrNoLegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies sentinels do not match each other
func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrParseFailure) {
		t.Error("errors.Is(ErrIllegalMove, ErrParseFailure) = true, want false")
	}
	if errors.Is(ErrUnsupported, ErrIllegalMove) {
		t.Error("errors.Is(ErrUnsupported, ErrIllegalMove) = true, want false")
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to set up position: %w", ErrInvalidFEN)

	if !Is(wrapped, ErrInvalidFEN) {
		t.Errorf("Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:      ErrIllegalMove,
				GameID:   "3f0c",
				PlyNum:   12,
				Side:     "Black",
				MoveText: "Nxe5",
			},
			contains: []string{"game 3f0c", "ply 12", "Black", "Nxe5", "illegal move"},
		},
		{
			name: "minimal context",
			err: &MoveError{
				Err: ErrGameOver,
			},
			contains: []string{"game is over"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_Unwrap verifies that MoveError properly implements Unwrap
func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{
		Err:    ErrIllegalMove,
		PlyNum: 1,
	}

	unwrapped := errors.Unwrap(moveErr)
	if !errors.Is(unwrapped, ErrIllegalMove) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrIllegalMove)
	}

	if !errors.Is(moveErr, ErrIllegalMove) {
		t.Error("errors.Is(moveErr, ErrIllegalMove) = false, want true")
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrUnsupported,
		PlyNum:   24,
		MoveText: "O-O-O",
	}

	wrapped := fmt.Errorf("console: %w", moveErr)

	var extractedErr *MoveError
	if !As(wrapped, &extractedErr) {
		t.Fatal("As() could not extract MoveError")
	}

	if extractedErr.PlyNum != 24 {
		t.Errorf("extractedErr.PlyNum = %d, want 24", extractedErr.PlyNum)
	}
	if extractedErr.MoveText != "O-O-O" {
		t.Errorf("extractedErr.MoveText = %q, want %q", extractedErr.MoveText, "O-O-O")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:      ErrParseFailure,
		Input:    "e9e4",
		Column:   2,
		Expected: "rank 1-8",
		Got:      "'9'",
	}

	msg := err.Error()

	for _, want := range []string{"e9e4", "column 2", "expected rank 1-8", "parse failure"} {
		if !containsIgnoreCase(msg, want) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, want)
		}
	}

	if got := (&ParseError{}).Error(); got != "parse error" {
		t.Errorf("empty ParseError.Error() = %q, want %q", got, "parse error")
	}
}

// TestParseError_Unwrap verifies ParseError implements Unwrap
func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{
		Err:   ErrAmbiguousMove,
		Input: "Nd2",
	}

	if !errors.Is(parseErr, ErrAmbiguousMove) {
		t.Error("errors.Is(parseErr, ErrAmbiguousMove) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "loading start position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "loading start position") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "ply %d of game %s", 15, "abc")

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "ply 15") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
