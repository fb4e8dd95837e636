package uintn

// quoRem sets q and r to the quotient and remainder of n / d using restoring
// binary long division: one shift, compare and conditional subtract per
// dividend bit. q, r, n and d must all have the same length; q and r must not
// alias n or d.
//
// Division by zero is not a fault: q and r are both set to zero.
func quoRem(q, r, n, d []uint32) {
	clearV(q)
	clearV(r)
	if isZeroV(d) {
		return
	}

	// Bits above the dividend's bit length would only shift zeros into a
	// remainder that is already smaller than d, so the loop starts there.
	for i := bitLenV(n); i > 0; {
		i--

		// r is at most the (B-1-i)-bit prefix of n consumed so far, so the
		// shift cannot lose a bit.
		shlBits(r, 1)
		if bitV(n, i) {
			r[0] |= 1
		}

		if cmpVV(r, d) >= 0 {
			subVV(r, r, d)
			setBitV(q, i, true)
		}
	}
}

// quo10 sets q = x / 10 without a long division. recip must hold
// ceil(2^(B+3) / 10) at the same width B = 32*len(x); the 2B-bit product
// x*recip shifted right by B+3 is exactly floor(x / 10) for every B-bit x.
// s must be at least 2n + karatsubaScratch(n) words.
func quo10(q, x, recip, s []uint32) {
	n := len(x)
	prod, s := s[:2*n], s[2*n:]
	karatsuba(prod, x, recip, s)

	// >> B is a whole-word move of the high half.
	copy(q, prod[n:])
	shrBits(q, 3)
}
