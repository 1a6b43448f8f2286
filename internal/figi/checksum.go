package figi

// expectedCheckDigit computes the check digit over the first eleven
// characters of a grammatically valid identifier.
//
// The scheme is Luhn-style but over the multi-valued character codes, not
// raw digits: traverse positions 1-11 left to right, double the code at
// every even position (2, 4, 6, 8, 10), reduce each resulting value to a
// single digit by summing its decimal digits, and sum the eleven reductions.
// The check digit is whatever brings that sum up to the next multiple of 10.
func expectedCheckDigit(runes []rune) int {
	sum := 0
	for i := 0; i < 11; i++ {
		code, _ := charCode(runes[i])
		if (i+1)%2 == 0 {
			code *= 2
		}
		sum += digitSum(code)
	}
	return (10 - sum%10) % 10
}

// digitSum reduces a value to the sum of its decimal digits. A single pass
// suffices: codes never exceed 35, so doubled values never exceed 70.
func digitSum(n int) int {
	return n%10 + n/10
}
