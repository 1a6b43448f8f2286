// Package figi validates Financial Instrument Global Identifiers
// (OMG FIGI specification, https://www.omg.org/spec/FIGI/).
//
// A FIGI is twelve characters: a two-consonant prefix that must avoid a
// small reserved set of country-code pairs, the literal 'G', eight
// consonant-or-digit body characters, and a decimal check digit computed
// with a weighted modulo-10 scheme over the first eleven characters.
//
// Domain Purity: this package contains only pure functions and immutable
// values. No I/O, no context.Context, no clocks. Every function is safe for
// unlimited concurrent use.
package figi

// reservedPrefixes are two-character combinations excluded because they
// collide with ISO country codes used by other identifier regimes.
var reservedPrefixes = map[string]struct{}{
	"BS": {}, "BM": {}, "GG": {}, "GB": {}, "GH": {}, "KY": {}, "VG": {},
}

// Length is the exact number of characters in a FIGI.
const Length = 12

// marker is the fixed literal required at position 3.
const marker = 'G'

// FIGI is a validated Financial Instrument Global Identifier.
//
// Invariants:
//   - Exactly 12 characters from the restricted alphabet
//   - Positions 1-2 are consonants outside the reserved prefix set
//   - Position 3 is the literal 'G'
//   - Positions 4-11 are consonants or digits
//   - Position 12 is the check digit and matches the computed checksum
//
// The zero value is not a valid identifier; construct only via Parse or
// MustParse. String returns the original input unchanged, so a FIGI
// round-trips losslessly and always re-validates.
type FIGI struct {
	value string
}

// Parse validates s and returns it as a FIGI. On failure it returns a
// *ParseError unwrapping to exactly one of the sentinel errors in this
// package, chosen by the first rule violated: length, prefix, marker, body
// characters, check digit format, checksum.
func Parse(s string) (FIGI, error) {
	runes := []rune(s)
	if len(runes) != Length {
		return FIGI{}, parseError(s, ErrInvalidLength)
	}
	if !isConsonant(runes[0]) || !isConsonant(runes[1]) {
		return FIGI{}, parseError(s, ErrInvalidPrefix)
	}
	if _, reserved := reservedPrefixes[string(runes[:2])]; reserved {
		return FIGI{}, parseError(s, ErrInvalidPrefix)
	}
	if runes[2] != marker {
		return FIGI{}, parseError(s, ErrInvalidMarker)
	}
	for _, r := range runes[3:11] {
		if !isConsonantOrDigit(r) {
			return FIGI{}, parseError(s, ErrInvalidBodyCharacter)
		}
	}
	if !isDigit(runes[11]) {
		return FIGI{}, parseError(s, ErrInvalidCheckDigitFormat)
	}
	if int(runes[11]-'0') != expectedCheckDigit(runes) {
		return FIGI{}, parseError(s, ErrInvalidChecksum)
	}
	return FIGI{value: s}, nil
}

// MustParse validates s, panicking if it is not a valid FIGI.
// Use only in tests or when the value is known to be valid.
func MustParse(s string) FIGI {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

// String returns the identifier exactly as it was parsed.
func (f FIGI) String() string {
	return f.value
}

// IsZero returns true if this is the zero value (uninitialized).
func (f FIGI) IsZero() bool {
	return f.value == ""
}

// Prefix returns the two-character issuer prefix (positions 1-2).
func (f FIGI) Prefix() string {
	if f.IsZero() {
		return ""
	}
	return f.value[:2]
}

// Marker returns the fixed literal at position 3, always "G" for a
// constructed value.
func (f FIGI) Marker() string {
	if f.IsZero() {
		return ""
	}
	return f.value[2:3]
}

// Body returns the nine consonant-or-digit characters following the 'G'
// marker (positions 4-12). The last body character is the check digit.
func (f FIGI) Body() string {
	if f.IsZero() {
		return ""
	}
	return f.value[3:]
}

// CheckDigit returns the check digit (position 12) as an integer 0-9.
func (f FIGI) CheckDigit() int {
	if f.IsZero() {
		return 0
	}
	return int(f.value[11] - '0')
}

// MarshalText implements encoding.TextMarshaler.
func (f FIGI) MarshalText() ([]byte, error) {
	return []byte(f.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by parsing the text
// with the full grammar and checksum rules.
func (f *FIGI) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
