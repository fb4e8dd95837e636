package uintn

import (
	"fmt"
	"math/big"
)

type RandSource interface {
	Uint64() uint64
}

func randWords(z []uint32, source RandSource) {
	for i := 0; i < len(z); i += 2 {
		v := source.Uint64()
		z[i] = uint32(v)
		if i+1 < len(z) {
			z[i+1] = uint32(v >> wordBits)
		}
	}
}

// wordsFromBigInt sets z from v. Negative values set z to zero and values too
// large for z set it to all ones; both report accurate == false.
func wordsFromBigInt(z []uint32, v *big.Int) (accurate bool) {
	clearV(z)
	if v.Sign() < 0 {
		return false
	}
	if v.BitLen() > len(z)*wordBits {
		notV(z, z)
		return false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		for i, w := range words {
			z[2*i] = uint32(w)
			if 2*i+1 < len(z) {
				z[2*i+1] = uint32(uint64(w) >> wordBits)
			}
		}

	case 32:
		for i, w := range words {
			z[i] = uint32(w)
		}

	default:
		panic("uintn: unsupported bit size")
	}
	return true
}

// wordsIntoBigInt sets b to the value of x, reusing b's storage.
func wordsIntoBigInt(b *big.Int, x []uint32) {
	switch intSize {
	case 64:
		ln := (len(x) + 1) / 2
		bits := b.Bits()
		if cap(bits) < ln {
			bits = make([]big.Word, ln)
		}
		bits = bits[:ln]
		for i := range bits {
			w := uint64(x[2*i])
			if 2*i+1 < len(x) {
				w |= uint64(x[2*i+1]) << wordBits
			}
			bits[i] = big.Word(w)
		}
		b.SetBits(bits)

	case 32:
		bits := b.Bits()
		if cap(bits) < len(x) {
			bits = make([]big.Word, len(x))
		}
		bits = bits[:len(x)]
		for i, w := range x {
			bits[i] = big.Word(w)
		}
		b.SetBits(bits)

	default:
		panic("uintn: unsupported bit size")
	}
}

// plainDecimal reports whether a fmt verb can be served by the native decimal
// formatter. Anything with padding, precision, a sign flag or a non-decimal
// base is passed through to big.Int instead.
func plainDecimal(s fmt.State, c rune) bool {
	if c != 'd' && c != 'v' && c != 's' {
		return false
	}
	if _, ok := s.Width(); ok {
		return false
	}
	if _, ok := s.Precision(); ok {
		return false
	}
	return !s.Flag('+') && !s.Flag(' ') && !s.Flag('#')
}
