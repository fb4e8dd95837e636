package uintn

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var mulWordCounts = []int{1, 2, 4, 8, 16, 32}

func allOnes(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = 0xFFFFFFFF
	}
	return out
}

func TestKaratsubaBoundary(t *testing.T) {
	for _, n := range mulWordCounts {
		t.Run(fmt.Sprintf("%dx0xFFFFFFFF", n), func(t *testing.T) {
			tt := assert.WrapTB(t)

			x, y := allOnes(n), allOnes(n)
			z := make([]uint32, 2*n)

			// Passing exactly karatsubaScratch(n) words proves the bound:
			// any overrun would panic.
			s := make([]uint32, karatsubaScratch(n))
			karatsuba(z, x, y, s)

			// (2^B - 1)^2 == 2^2B - 2^(B+1) + 1
			expected := new(big.Int).Mul(wordsBig(x), wordsBig(y))
			tt.MustEqual(expected.String(), wordsBig(z).String())
			tt.MustEqual(uint32(1), z[0])
			tt.MustEqual(uint32(0xFFFFFFFE), z[n])
		})
	}
}

func TestKaratsubaRandom(t *testing.T) {
	for _, n := range mulWordCounts {
		t.Run(fmt.Sprintf("%dwords", n), func(t *testing.T) {
			tt := assert.WrapTB(t)

			z := make([]uint32, 2*n)
			s := make([]uint32, karatsubaScratch(n))

			for i := 0; i < 2000; i++ {
				x, y := randomWords(nil, n), randomWords(nil, n)
				karatsuba(z, x, y, s)

				expected := new(big.Int).Mul(wordsBig(x), wordsBig(y))
				tt.MustEqual(expected.String(), wordsBig(z).String(), "%x * %x", wordsBig(x), wordsBig(y))
			}
		})
	}
}

// The half-width sums only carry when both halves are large; these cases
// force each combination of xc and yc.
func TestKaratsubaCarryCorrection(t *testing.T) {
	for idx, tc := range []struct {
		x, y []uint32
	}{
		{[]uint32{0xFFFFFFFF, 0xFFFFFFFF}, []uint32{1, 1}},
		{[]uint32{1, 1}, []uint32{0xFFFFFFFF, 0xFFFFFFFF}},
		{[]uint32{0xFFFFFFFF, 0x80000000}, []uint32{0x80000000, 0xFFFFFFFF}},
		{[]uint32{0, 0, 0xFFFFFFFF, 0xFFFFFFFF}, []uint32{0xFFFFFFFF, 0xFFFFFFFF, 1, 0}},
		{[]uint32{0xFFFFFFFF, 0xFFFFFFFF, 1, 0}, []uint32{0xFFFFFFFF, 0, 0xFFFFFFFF, 0x80000000}},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			n := len(tc.x)
			z := make([]uint32, 2*n)
			karatsuba(z, tc.x, tc.y, make([]uint32, karatsubaScratch(n)))

			expected := new(big.Int).Mul(wordsBig(tc.x), wordsBig(tc.y))
			tt.MustEqual(expected.String(), wordsBig(z).String())
		})
	}
}

// schoolbook is the O(n^2) product, used as a second opinion alongside
// math/big for the truncated product.
func schoolbook(x, y []uint32) []uint32 {
	n := len(x)
	z := make([]uint32, 2*n)
	for i := 0; i < n; i++ {
		var carry uint64
		for j := 0; j < n; j++ {
			t := uint64(x[i])*uint64(y[j]) + uint64(z[i+j]) + carry
			z[i+j] = uint32(t)
			carry = t >> wordBits
		}
		z[i+n] = uint32(carry)
	}
	return z
}

func TestMulMatchesSchoolbook(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, n := range mulWordCounts {
		s := make([]uint32, 2*n+karatsubaScratch(n))
		z := make([]uint32, n)
		for i := 0; i < 500; i++ {
			x, y := randomWords(nil, n), randomWords(nil, n)
			mul(z, x, y, s)
			tt.MustEqual(schoolbook(x, y)[:n], z)
		}

		x, y := allOnes(n), allOnes(n)
		mul(z, x, y, s)
		tt.MustEqual(schoolbook(x, y)[:n], z)
	}
}

func TestMulDoubling(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, n := range mulWordCounts {
		z := make([]uint32, 2*n)
		acc := make([]uint32, 2*n)

		for _, y := range []uint16{0, 1, 2, 10, 0x8000, 0xFFFF} {
			x := allOnes(n)
			mulDoubling(z, acc, x, y)
			expected := new(big.Int).Mul(wordsBig(x), big.NewInt(int64(y)))
			tt.MustEqual(expected.String(), wordsBig(z).String(), "%d words * %d", n, y)
		}

		for i := 0; i < 500; i++ {
			x := randomWords(nil, n)
			y := uint16(globalRNG.Intn(1 << 16))
			mulDoubling(z, acc, x, y)
			expected := new(big.Int).Mul(wordsBig(x), big.NewInt(int64(y)))
			tt.MustEqual(expected.String(), wordsBig(z).String())
		}
	}
}

func TestScratchWords(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, tc := range []struct {
		words   int
		scratch int
	}{
		{u32Words, u32Scratch},
		{u64Words, u64Scratch},
		{u128Words, u128Scratch},
		{u256Words, u256Scratch},
		{u512Words, u512Scratch},
		{u1024Words, u1024Scratch},
	} {
		tt.MustEqual(scratchWords(tc.words), tc.scratch, "%d words", tc.words)
		tt.MustAssert(tc.scratch >= 2*tc.words+karatsubaScratch(tc.words))
	}
}
