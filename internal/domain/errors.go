package domain

import (
	"errors"
	"fmt"
)

// Sentinel kinds so callers can match with errors.Is without depending on
// the concrete error types.
var (
	// ErrParse matches malformed or over-length numeric text.
	ErrParse = errors.New("invalid number text")
	// ErrOverflow matches numeric text outside the signed 64-bit range.
	ErrOverflow = errors.New("number out of range")
	// ErrIncomplete matches a factorization truncated by the table bound.
	ErrIncomplete = errors.New("factorization incomplete")
)

// ParseError reports malformed or over-length numeric text.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// OverflowError reports numeric text that does not fit in an int64.
type OverflowError struct {
	Input string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%q does not fit in a 64-bit integer", e.Input)
}

func (e *OverflowError) Is(target error) bool { return target == ErrOverflow }

// IncompleteError reports a residual factor above the sieve bound left
// over after the prime table was exhausted. The factors collected before
// the table ran out are still returned alongside it; their product falls
// short of the input by exactly Remaining.
type IncompleteError struct {
	Remaining int64
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("residual factor %d exceeds the prime table bound", e.Remaining)
}

func (e *IncompleteError) Is(target error) bool { return target == ErrIncomplete }
