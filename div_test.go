package uintn

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestQuoRemWords(t *testing.T) {
	for idx, tc := range []struct {
		n, d []uint32
		q, r []uint32
	}{
		{[]uint32{1}, []uint32{2}, []uint32{0}, []uint32{1}},
		{[]uint32{10}, []uint32{3}, []uint32{3}, []uint32{1}},
		{[]uint32{0xFFFFFFFF}, []uint32{0xFFFFFFFF}, []uint32{1}, []uint32{0}},
		{[]uint32{0, 1}, []uint32{1, 0}, []uint32{0, 1}, []uint32{0, 0}},
		{[]uint32{1, 0}, []uint32{0, 1}, []uint32{0, 0}, []uint32{1, 0}},
		{[]uint32{0xFFFFFFFF, 0xFFFFFFFF}, []uint32{0xFFFFFFFF, 0xFFFFFFFF}, []uint32{1, 0}, []uint32{0, 0}},
		{[]uint32{0xFFFFFFFF, 0xFFFFFFFF}, []uint32{0, 0x80000000}, []uint32{1, 0}, []uint32{0xFFFFFFFF, 0x7FFFFFFF}},

		// Division by zero is (0, 0):
		{[]uint32{1234}, []uint32{0}, []uint32{0}, []uint32{0}},
		{[]uint32{0xFFFFFFFF, 0xFFFFFFFF}, []uint32{0, 0}, []uint32{0, 0}, []uint32{0, 0}},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r := make([]uint32, len(tc.n)), make([]uint32, len(tc.n))

			// Fill with junk to prove quoRem clears its outputs.
			for i := range q {
				q[i], r[i] = 0xDEADBEEF, 0xDEADBEEF
			}

			quoRem(q, r, tc.n, tc.d)
			tt.MustEqual(tc.q, q)
			tt.MustEqual(tc.r, r)
		})
	}
}

func TestQuoRemRandom(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, n := range mulWordCounts {
		q, r := make([]uint32, n), make([]uint32, n)
		for i := 0; i < 500; i++ {
			x, d := randomWords(nil, n), randomWords(nil, n)

			// Narrow divisors hit the long tail of the loop.
			if globalRNG.Intn(2) == 0 {
				shr(d, uint(globalRNG.Intn(n*wordBits)))
			}

			quoRem(q, r, x, d)

			bx, bd := wordsBig(x), wordsBig(d)
			if bd.Sign() == 0 {
				tt.MustAssert(isZeroV(q) && isZeroV(r))
				continue
			}
			bq, br := new(big.Int).QuoRem(bx, bd, new(big.Int))
			tt.MustEqual(bq.String(), wordsBig(q).String(), "%s / %s", bx, bd)
			tt.MustEqual(br.String(), wordsBig(r).String(), "%s %% %s", bx, bd)
		}
	}
}

func recip10For(n int) []uint32 {
	switch n {
	case u32Words:
		return u32Recip10[:]
	case u64Words:
		return u64Recip10[:]
	case u128Words:
		return u128Recip10[:]
	case u256Words:
		return u256Recip10[:]
	case u512Words:
		return u512Recip10[:]
	case u1024Words:
		return u1024Recip10[:]
	}
	panic(fmt.Errorf("no reciprocal for %d words", n))
}

func TestQuo10(t *testing.T) {
	for _, n := range mulWordCounts {
		t.Run(fmt.Sprintf("%dwords", n), func(t *testing.T) {
			tt := assert.WrapTB(t)

			bits := n * wordBits
			recip := recip10For(n)
			q := make([]uint32, n)
			s := make([]uint32, 2*n+karatsubaScratch(n))

			check := func(x []uint32) {
				quo10(q, x, recip, s)
				expected := new(big.Int).Quo(wordsBig(x), big.NewInt(10))
				tt.MustEqual(expected.String(), wordsBig(q).String(), "%s / 10", wordsBig(x))
			}

			// Boundaries: near zero, near every multiple of ten at the top
			// of the range, and the maximum itself.
			max := maxBig(bits)
			for i := int64(0); i < 100; i++ {
				x := make([]uint32, n)
				fromUint64(x, uint64(i))
				check(x)

				top := make([]uint32, n)
				wordsFromBigInt(top, new(big.Int).Sub(max, big.NewInt(i)))
				check(top)
			}

			for i := 0; i < 1000; i++ {
				check(randomWords(nil, n))
			}
		})
	}
}
