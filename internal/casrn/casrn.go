// Package casrn validates CAS Registry Numbers.
//
// A CAS Registry Number has the shape NNNNNNN-NN-R: two to seven
// digits, two digits, and a single check digit, hyphen separated. The
// check digit is the weighted digit sum modulo ten, with weights
// counting up from the digit nearest the check digit.
package casrn

import "strings"

// Valid reports whether s is a well formed CAS Registry Number with a
// correct check digit, e.g. "7732-18-5" for water.
func Valid(s string) bool {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return false
	}
	if len(parts[0]) < 2 || len(parts[0]) > 7 {
		return false
	}
	if len(parts[1]) != 2 || len(parts[2]) != 1 {
		return false
	}
	digits := parts[0] + parts[1]
	sum := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		sum += (len(digits) - i) * int(c-'0')
	}
	check := parts[2][0]
	if check < '0' || check > '9' {
		return false
	}
	return sum%10 == int(check-'0')
}
