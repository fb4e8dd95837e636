package uintn

import "math/bits"

// karatsubaScratch returns the number of scratch words karatsuba needs for
// n-word operands. Each level carves out two half-width sums and an
// (n+1)-word middle product, then recurses on the remainder:
//
//	S(1) = 0
//	S(n) = 2n + 1 + S(n/2)  =  4n - 4 + log2(n)
//
// The returned value rounds that up to 4n + bits.Len(n).
func karatsubaScratch(n int) int {
	return 4*n + bits.Len(uint(n))
}

// scratchWords returns the size of the scratch buffer that every generated
// width declares for n-word values. Decimal formatting is the hungriest
// caller: the running value and quotient (2n), the double-width product (2n)
// and the multiplication scratch on top.
func scratchWords(n int) int {
	return 4*n + karatsubaScratch(n)
}

// mulWW returns the 64-bit product of x and y split into 32-bit words.
func mulWW(x, y uint32) (hi, lo uint32) {
	p := uint64(x) * uint64(y)
	return uint32(p >> wordBits), uint32(p)
}

// karatsuba sets z to the exact product of x and y. x and y must have the
// same power-of-two length n, z must have length 2n and must not alias x, y
// or s. s is scratch space of at least karatsubaScratch(n) words.
//
// With B = 32n and both operands split into B/2-bit halves:
//
//	x = x1*2^(B/2) + x0
//	y = y1*2^(B/2) + y0
//
//	z0 = x0*y0
//	z2 = x1*y1
//	z3 = (x1+x0)*(y1+y0)
//	z1 = z3 - z2 - z0
//
//	x*y = z2*2^B + z1*2^(B/2) + z0
//
// The half-width sums x2 = x1+x0 and y2 = y1+y0 may each carry out of B/2
// bits. The carries are lost by the half-width addition, so z3 is computed
// from the truncated sums and then corrected:
//
//	(x2 + xc*2^(B/2)) * (y2 + yc*2^(B/2))
//	  = x2*y2 + xc*y2*2^(B/2) + yc*x2*2^(B/2) + xc*yc*2^B
func karatsuba(z, x, y, s []uint32) {
	n := len(x)
	if n == 1 {
		z[1], z[0] = mulWW(x[0], y[0])
		return
	}

	h := n / 2
	x0, x1 := x[:h], x[h:]
	y0, y1 := y[:h], y[h:]

	// z0 and z2 land directly in the low and high halves of z, which is
	// z2*2^B + z0 already.
	karatsuba(z[:n], x0, y0, s)
	karatsuba(z[n:], x1, y1, s)

	x2, y2, z3, s := s[:h], s[h:n], s[n:2*n+1], s[2*n+1:]

	xc := addVV(x2, x1, x0)
	yc := addVV(y2, y1, y0)

	karatsuba(z3[:n], x2, y2, s)
	z3[n] = 0

	// z3 is one word wider than the recursive product so the carry
	// corrections cannot overflow: the true middle product is < 2^(B+2).
	if xc != 0 {
		addAt(z3[h:], y2)
	}
	if yc != 0 {
		addAt(z3[h:], x2)
	}
	if xc != 0 && yc != 0 {
		z3[n]++
	}

	// z1 = z3 - z2 - z0
	subAt(z3, z[:n])
	subAt(z3, z[n:])

	// The full product fits in 2n words, so the final carry is always 0.
	addAt(z[h:], z3)
}

// mulDoubling sets z to the exact product of x and the 16-bit scalar y by
// binary shift-and-add: for each set bit of y, the current doubling of x is
// added into z. z and acc must both have length 2*len(x); acc is scratch.
//
// It is cheaper than karatsuba when one operand is known to be this narrow.
func mulDoubling(z, acc, x []uint32, y uint16) {
	clearV(z)
	copy(acc, x)
	clearV(acc[len(x):])

	for y != 0 {
		if y&1 == 1 {
			addVV(z, z, acc)
		}
		shlBits(acc, 1)
		y >>= 1
	}
}

// mul sets z to x*y modulo 2^(32*len(z)): the exact double-width product is
// computed and then narrowed, silently discarding the high half. s must be at
// least 2n + karatsubaScratch(n) words.
func mul(z, x, y, s []uint32) {
	n := len(x)
	prod, s := s[:2*n], s[2*n:]
	karatsuba(prod, x, y, s)
	copy(z, prod[:n])
}

// mul16 sets z to x*y modulo 2^(32*len(z)) using the doubling multiplier.
// s must be at least 4n words.
func mul16(z, x []uint32, y uint16, s []uint32) {
	n := len(x)
	prod, acc := s[:2*n], s[2*n:4*n]
	mulDoubling(prod, acc, x, y)
	copy(z, prod[:n])
}
