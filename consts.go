package uintn

const (
	// wordBits is the width of one digit of a value's representation.
	wordBits = 32

	intSize = 32 << (^uint(0) >> 63)
)
