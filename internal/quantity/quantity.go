// Package quantity parses display quantities as they appear on trading
// screens and term sheets: a decimal value wrapped in optional currency and
// accounting decoration, with an optional shorthand factor suffix.
//
//	"100"     -> 100
//	"1M"      -> 1 thousand
//	"1.5MM"   -> 1.5 million
//	"($100)"  -> 100 dollars (parentheses are decoration, not negation)
//	"1000P"   -> 1000 (P marks an already-plain value)
//
// Pure domain code: no I/O, no context, safe for concurrent use.
package quantity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Factor is the shorthand multiplier suffix on a display quantity.
type Factor string

const (
	FactorNone Factor = ""
	FactorM    Factor = "M"    // thousand
	FactorMM   Factor = "MM"   // million
	FactorMMM  Factor = "MMM"  // billion
	FactorMMMM Factor = "MMMM" // trillion
	FactorP    Factor = "P"    // plain, no scaling
)

// factorMultipliers maps each suffix to its scale. Longest suffix first when
// matching, so "1MM" never stops at "M".
var factorMultipliers = map[Factor]float64{
	FactorNone: 1,
	FactorM:    1_000,
	FactorMM:   1_000_000,
	FactorMMM:  1_000_000_000,
	FactorMMMM: 1_000_000_000_000,
	FactorP:    1,
}

// Multiplier returns the scale this factor applies.
func (f Factor) Multiplier() float64 {
	m, ok := factorMultipliers[f]
	if !ok {
		return 1
	}
	return m
}

var (
	// ErrEmptyQuantity indicates no numeric content after stripping decoration.
	ErrEmptyQuantity = errors.New("quantity is empty")
	// ErrInvalidNumber indicates the numeric part is not a decimal number.
	ErrInvalidNumber = errors.New("quantity must start with a decimal number")
	// ErrUnknownFactor indicates trailing input that is not a known factor suffix.
	ErrUnknownFactor = errors.New("unknown quantity factor suffix")
)

// Quantity is a parsed display quantity. The raw value and its factor are
// kept separate; Resolve applies the factor.
//
// The zero value reports Value 0 with no factor; construct via Parse.
type Quantity struct {
	value  float64
	factor Factor
}

// Parse reads a display quantity. Leading whitespace, a currency sign,
// accounting parentheses and an explicit sign are accepted as decoration;
// the number may carry one factor suffix and nothing else.
func Parse(s string) (Quantity, error) {
	rest := strings.TrimSpace(s)
	negative := false

	// Strip decoration from the outside in: "($1.5MM)", " -$100", "(100".
strip:
	for {
		switch {
		case strings.HasPrefix(rest, "(") && strings.HasSuffix(rest, ")"):
			rest = strings.TrimSpace(rest[1 : len(rest)-1])
		case strings.HasPrefix(rest, "("):
			rest = strings.TrimSpace(rest[1:])
		case strings.HasPrefix(rest, "$"):
			rest = strings.TrimSpace(rest[1:])
		case strings.HasPrefix(rest, "+"):
			rest = strings.TrimSpace(rest[1:])
		case strings.HasPrefix(rest, "-"):
			negative = !negative
			rest = strings.TrimSpace(rest[1:])
		default:
			break strip
		}
	}
	if rest == "" {
		return Quantity{}, fmt.Errorf("%w: %q", ErrEmptyQuantity, s)
	}

	numEnd := 0
	for numEnd < len(rest) && (rest[numEnd] >= '0' && rest[numEnd] <= '9' || rest[numEnd] == '.') {
		numEnd++
	}
	if numEnd == 0 {
		return Quantity{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	value, err := strconv.ParseFloat(rest[:numEnd], 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	if negative {
		value = -value
	}

	factor, err := parseFactor(rest[numEnd:])
	if err != nil {
		return Quantity{}, fmt.Errorf("%w: %q", err, s)
	}
	return Quantity{value: value, factor: factor}, nil
}

// parseFactor matches the trailing factor suffix. The whole remainder must
// be one suffix; anything else is an error.
func parseFactor(s string) (Factor, error) {
	switch Factor(s) {
	case FactorNone, FactorM, FactorMM, FactorMMM, FactorMMMM, FactorP:
		return Factor(s), nil
	}
	return FactorNone, ErrUnknownFactor
}

// MustParse parses s, panicking if invalid.
// Use only in tests or when the value is known to be valid.
func MustParse(s string) Quantity {
	q, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return q
}

// Value returns the unscaled numeric part.
func (q Quantity) Value() float64 {
	return q.value
}

// Factor returns the parsed factor suffix.
func (q Quantity) Factor() Factor {
	return q.factor
}

// Resolve returns the value with its factor applied.
func (q Quantity) Resolve() float64 {
	return q.value * q.factor.Multiplier()
}
