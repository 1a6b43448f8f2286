package figi

import (
	"errors"
	"fmt"
)

// Validation failures form a closed set. Parse returns a *ParseError that
// unwraps to exactly one of these sentinels, so callers can match with
// errors.Is without losing the offending input.
var (
	// ErrInvalidLength indicates the input is not exactly 12 characters.
	ErrInvalidLength = errors.New("figi must be exactly 12 characters")
	// ErrInvalidPrefix indicates positions 1-2 are not both restricted
	// consonants, or form a reserved country-code pair.
	ErrInvalidPrefix = errors.New("figi prefix must be two consonants outside the reserved set")
	// ErrInvalidMarker indicates position 3 is not the literal 'G'.
	ErrInvalidMarker = errors.New("figi third character must be 'G'")
	// ErrInvalidBodyCharacter indicates one of positions 4-11 is neither a
	// restricted consonant nor a digit.
	ErrInvalidBodyCharacter = errors.New("figi positions 4-11 must be consonants or digits")
	// ErrInvalidCheckDigitFormat indicates position 12 is not a decimal digit.
	ErrInvalidCheckDigitFormat = errors.New("figi check digit must be a decimal digit")
	// ErrInvalidChecksum indicates the check digit does not match the value
	// computed over positions 1-11.
	ErrInvalidChecksum = errors.New("figi check digit does not match computed checksum")
)

// ParseError reports why a candidate string is not a valid FIGI. It carries
// the original input for diagnostics and unwraps to one of the sentinel
// errors above. Exactly one rule is reported: the first violated in
// evaluation order.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseError(input string, sentinel error) error {
	return &ParseError{Input: input, Err: sentinel}
}
