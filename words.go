package uintn

import (
	"math/bits"
)

// The functions in this file operate on little-endian slices of 32-bit words
// ("digits"); index 0 is the least significant word. Every fixed-width type in
// the package is a thin wrapper around an array of words that it slices and
// hands to these functions, so the arithmetic only exists once regardless of
// how many widths are generated.
//
// Unless stated otherwise, all slices passed to a function must have the same
// length and the destination may alias any source.

func clearV(z []uint32) {
	for i := range z {
		z[i] = 0
	}
}

func isZeroV(x []uint32) bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

func fromUint64(z []uint32, v uint64) {
	clearV(z)
	z[0] = uint32(v)
	if len(z) > 1 {
		z[1] = uint32(v >> wordBits)
	}
}

func asUint64(x []uint32) uint64 {
	if len(x) == 1 {
		return uint64(x[0])
	}
	return uint64(x[1])<<wordBits | uint64(x[0])
}

func fitsUint64(x []uint32) bool {
	if len(x) <= 2 {
		return true
	}
	return isZeroV(x[2:])
}

// {{{ bitwise

func andVV(z, x, y []uint32) {
	for i := range z {
		z[i] = x[i] & y[i]
	}
}

func andNotVV(z, x, y []uint32) {
	for i := range z {
		z[i] = x[i] &^ y[i]
	}
}

func orVV(z, x, y []uint32) {
	for i := range z {
		z[i] = x[i] | y[i]
	}
}

func xorVV(z, x, y []uint32) {
	for i := range z {
		z[i] = x[i] ^ y[i]
	}
}

func notV(z, x []uint32) {
	for i := range z {
		z[i] = ^x[i]
	}
}

// bitV reports whether the bit at pos is set. Positions past the end of x
// read as zero.
func bitV(x []uint32, pos uint) bool {
	if pos >= uint(len(x))*wordBits {
		return false
	}
	return x[pos/wordBits]>>(pos%wordBits)&1 == 1
}

// setBitV sets or clears the bit at pos. Positions past the end of z are
// ignored.
func setBitV(z []uint32, pos uint, v bool) {
	if pos >= uint(len(z))*wordBits {
		return
	}
	if v {
		z[pos/wordBits] |= 1 << (pos % wordBits)
	} else {
		z[pos/wordBits] &^= 1 << (pos % wordBits)
	}
}

func leadingZerosV(x []uint32) uint {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return uint(len(x)-1-i)*wordBits + uint(bits.LeadingZeros32(x[i]))
		}
	}
	return uint(len(x)) * wordBits
}

func trailingZerosV(x []uint32) uint {
	for i, w := range x {
		if w != 0 {
			return uint(i)*wordBits + uint(bits.TrailingZeros32(w))
		}
	}
	return uint(len(x)) * wordBits
}

func bitLenV(x []uint32) uint {
	return uint(len(x))*wordBits - leadingZerosV(x)
}

// }}}

// {{{ shifts

// shlWords shifts z left in place by n whole words. Shifting by len(z) or
// more clears z.
func shlWords(z []uint32, n uint) {
	if n == 0 {
		return
	}
	if n >= uint(len(z)) {
		clearV(z)
		return
	}
	copy(z[n:], z[:uint(len(z))-n])
	clearV(z[:n])
}

// shrWords shifts z right in place by n whole words. Shifting by len(z) or
// more clears z.
func shrWords(z []uint32, n uint) {
	if n == 0 {
		return
	}
	if n >= uint(len(z)) {
		clearV(z)
		return
	}
	copy(z, z[n:])
	clearV(z[uint(len(z))-n:])
}

// shlBits shifts z left in place by s bits, where s must be less than
// wordBits. Bits shifted out of the top word are lost.
func shlBits(z []uint32, s uint) {
	if s == 0 || s >= wordBits {
		return
	}
	for i := len(z) - 1; i > 0; i-- {
		z[i] = z[i]<<s | z[i-1]>>(wordBits-s)
	}
	z[0] <<= s
}

// shrBits shifts z right in place by s bits, where s must be less than
// wordBits.
func shrBits(z []uint32, s uint) {
	if s == 0 || s >= wordBits {
		return
	}
	last := len(z) - 1
	for i := 0; i < last; i++ {
		z[i] = z[i]>>s | z[i+1]<<(wordBits-s)
	}
	z[last] >>= s
}

// shl shifts z left in place by n bits. The shift is not taken modulo the
// width: n >= 32*len(z) leaves z zero.
func shl(z []uint32, n uint) {
	shlWords(z, n/wordBits)
	shlBits(z, n%wordBits)
}

// shr shifts z right in place by n bits. n >= 32*len(z) leaves z zero.
func shr(z []uint32, n uint) {
	shrWords(z, n/wordBits)
	shrBits(z, n%wordBits)
}

// }}}

// {{{ add, sub, cmp

// addVV sets z = x + y, wrapping modulo 2^(32*len(z)), and returns the carry
// out of the top word.
func addVV(z, x, y []uint32) (carry uint32) {
	for i := range z {
		z[i], carry = bits.Add32(x[i], y[i], carry)
	}
	return carry
}

// addVW sets z = x + w and returns the carry out of the top word.
func addVW(z, x []uint32, w uint32) (carry uint32) {
	carry = w
	for i := range z {
		z[i], carry = bits.Add32(x[i], 0, carry)
	}
	return carry
}

// subVV sets z = x - y. The subtraction is performed as x + (^y + 1), the
// addition of y's two's complement; the +1 enters as the initial carry. It
// returns 1 if x < y.
func subVV(z, x, y []uint32) (borrow uint32) {
	carry := uint32(1)
	for i := range z {
		z[i], carry = bits.Add32(x[i], ^y[i], carry)
	}
	return carry ^ 1
}

// subVW sets z = x - w, as x + (^w + 1), and returns 1 if x < w.
func subVW(z, x []uint32, w uint32) (borrow uint32) {
	if len(z) == 0 {
		if w != 0 {
			return 1
		}
		return 0
	}
	carry := uint32(1)
	y := w
	for i := range z {
		z[i], carry = bits.Add32(x[i], ^y, carry)
		y = 0
	}
	return carry ^ 1
}

// negV sets z to the two's complement of x, ^x + 1.
func negV(z, x []uint32) {
	notV(z, x)
	addVW(z, z, 1)
}

// addAt adds x into the low len(x) words of z and ripples the carry through
// the rest of z. len(z) must be at least len(x).
func addAt(z, x []uint32) (carry uint32) {
	n := len(x)
	carry = addVV(z[:n], z[:n], x)
	return addVW(z[n:], z[n:], carry)
}

// subAt subtracts x from the low len(x) words of z and ripples the borrow
// through the rest of z. len(z) must be at least len(x).
func subAt(z, x []uint32) (borrow uint32) {
	n := len(x)
	borrow = subVV(z[:n], z[:n], x)
	return subVW(z[n:], z[n:], borrow)
}

// cmpVV compares x and y starting from the most significant word and returns
// -1, 0 or +1.
func cmpVV(x, y []uint32) int {
	i := len(x) - 1
	for i > 0 && x[i] == y[i] {
		i--
	}
	if x[i] > y[i] {
		return 1
	} else if x[i] < y[i] {
		return -1
	}
	return 0
}

// signV treats the top bit of x as a two's complement sign bit and returns
// -1 if it is set, otherwise +1 for a nonzero x and 0 for zero.
func signV(x []uint32) int {
	if x[len(x)-1]>>(wordBits-1) == 1 {
		return -1
	}
	if isZeroV(x) {
		return 0
	}
	return 1
}

// }}}
