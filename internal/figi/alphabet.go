package figi

// The FIGI alphabet is the uppercase Latin consonants (vowels excluded to
// avoid accidental words) plus the decimal digits. Each character carries an
// integer code used by the check digit computation. Digits map to their
// value; consonants map to 10 + their ordinal position in the full Latin
// alphabet, so the consonant codes are non-contiguous (14, 18, 24 and 30
// belong to the skipped vowels E, I, O and U). The check digit computation
// depends on these exact values; a dense 0..20 consonant index produces
// checksums that validate for the wrong inputs.
var charCodes = map[rune]int{
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4,
	'5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'B': 11, 'C': 12, 'D': 13, 'F': 15, 'G': 16,
	'H': 17, 'J': 19, 'K': 20, 'L': 21, 'M': 22,
	'N': 23, 'P': 25, 'Q': 26, 'R': 27, 'S': 28,
	'T': 29, 'V': 31, 'W': 32, 'X': 33, 'Y': 34,
	'Z': 35,
}

// isConsonant reports whether r is one of the restricted uppercase Latin
// consonants. Matching is exact: no case folding, no Unicode normalization.
func isConsonant(r rune) bool {
	switch {
	case r >= 'B' && r <= 'D', r >= 'F' && r <= 'H',
		r >= 'J' && r <= 'N', r >= 'P' && r <= 'T',
		r >= 'V' && r <= 'Z':
		return true
	}
	return false
}

// isDigit reports whether r is an ASCII decimal digit.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isConsonantOrDigit reports whether r is admissible in the identifier body.
func isConsonantOrDigit(r rune) bool {
	return isConsonant(r) || isDigit(r)
}

// charCode returns the checksum code for r. The second return is false for
// characters outside the FIGI alphabet.
func charCode(r rune) (int, bool) {
	code, ok := charCodes[r]
	return code, ok
}
