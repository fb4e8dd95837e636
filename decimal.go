package uintn

import (
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class of every error returned by this package.
var Error = errs.Class("uintn")

// formatDecimal appends the decimal digits of x to buf and returns the
// extended slice. recip is the divide-by-ten reciprocal for x's width and s
// must be at least scratchWords(len(x)) words.
//
// Digits are produced least significant first by repeated fast division by
// ten, then reversed in place; buf needs room for Digits10+1 bytes to avoid
// growing.
func formatDecimal(buf []byte, x, recip, s []uint32) []byte {
	n := len(x)
	v, q, s := s[:n], s[n:2*n], s[2*n:]
	copy(v, x)

	start := len(buf)
	for {
		quo10(q, v, recip, s)

		// v - q*10 is the digit that the division dropped.
		prod, acc := s[:2*n], s[2*n:4*n]
		mulDoubling(prod, acc, q, 10)
		subVV(v, v, prod[:n])
		buf = append(buf, '0'+byte(v[0]))

		copy(v, q)
		if isZeroV(v) {
			break
		}
	}

	digits := buf[start:]
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return buf
}

// cmpDecimal compares two canonical decimal strings (digits only, no leading
// zeros) numerically: a longer string is larger, equal lengths compare
// lexicographically.
func cmpDecimal(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// parseDecimal sets z to the value of the canonical decimal string digits.
// If digits is larger than max, the decimal form of the largest value z can
// hold, z is set to zero and parseDecimal returns false. s must be at least
// 4*len(z) words.
func parseDecimal(z []uint32, digits, max string, s []uint32) (inRange bool) {
	clearV(z)
	if cmpDecimal(digits, max) > 0 {
		return false
	}

	n := len(z)
	prod, acc := s[:2*n], s[2*n:4*n]
	for i := 0; i < len(digits); i++ {
		mulDoubling(prod, acc, z, 10)
		copy(z, prod[:n])
		addVW(z, z, uint32(digits[i]-'0'))
	}
	return true
}

// checkLiteral reports whether s is a canonical decimal literal: at least one
// digit, digits only, and no leading zero unless s is "0".
func checkLiteral(s string) error {
	if s == "" {
		return Error.New("empty literal")
	}
	if len(s) > 1 && s[0] == '0' {
		return Error.New("literal %q has a leading zero", s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Error.New("literal %q is not decimal", s)
		}
	}
	return nil
}

// canonicalDecimal validates an untrusted decimal string and strips any
// leading zeros so it can be compared against a maximum with cmpDecimal.
func canonicalDecimal(s string, kind string) (string, error) {
	if s == "" {
		return "", Error.New("%s string is empty", kind)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", Error.New("%s string %q invalid", kind, s)
		}
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		s = "0"
	}
	return s, nil
}

// unquoteJSON strips the quotes from a JSON string. Bare numbers are accepted
// as-is.
func unquoteJSON(bts []byte, kind string) ([]byte, error) {
	if len(bts) == 0 {
		return nil, Error.New("%s invalid JSON %q", kind, string(bts))
	}
	if bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return nil, Error.New("%s invalid JSON %q", kind, string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return bts, nil
}
