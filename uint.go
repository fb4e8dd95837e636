package uintn

import (
	"fmt"
	"math/big"
)

// Uint is satisfied by every fixed-width type in this package (U32 through
// U1024). It lets generic code work across widths, and doubles as the
// numeric-traits query surface: Bits, Digits10, Min and Max answer the same
// questions for any T.
//
// Uint is a constraint; it cannot be used as an ordinary interface type.
type Uint[T any] interface {
	comparable
	fmt.Stringer
	fmt.Formatter

	Bits() int
	Digits10() int
	Min() T
	Max() T

	IsZero() bool
	AsBool() bool
	AsUint32() uint32
	AsUint64() uint64
	IsUint64() bool
	AsBigInt() *big.Int

	Bit(pos uint) bool
	SetBit(pos uint, v bool) T
	BitLen() uint
	LeadingZeros() uint
	TrailingZeros() uint

	And(n T) T
	AndNot(n T) T
	Or(n T) T
	Xor(n T) T
	Not() T
	Lsh(n uint) T
	Rsh(n uint) T
	LshInt(n int) T
	RshInt(n int) T

	Add(n T) T
	AddCarry(n T) (T, bool)
	Sub(n T) T
	Neg() T
	Inc() T
	Dec() T
	Mul(n T) T
	Mul16(n uint16) T
	Quo(by T) T
	Rem(by T) T
	QuoRem(by T) (q, r T)

	Cmp(n T) int
	Equal(n T) bool
	GreaterThan(n T) bool
	GreaterOrEqualTo(n T) bool
	LessThan(n T) bool
	LessOrEqualTo(n T) bool
	Sign() int
}

// Difference subtracts the smaller of a and b from the larger.
func Difference[T Uint[T]](a, b T) T {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func Larger[T Uint[T]](a, b T) T {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func Smaller[T Uint[T]](a, b T) T {
	if b.LessThan(a) {
		return b
	}
	return a
}
