/*
Package uintn provides fixed-width unsigned integers wider than the machine
word: U32, U64, U128, U256, U512 and U1024. Every type is a power-of-two
number of bits, stored as little-endian 32-bit words.

Values are plain value types; all operations return new values. Arithmetic is
modular: Add, Sub, Mul, Inc and Dec wrap silently at 2^Bits.

Simple example:

	u1 := U128From64(math.MaxUint64)
	u2 := U128From64(math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225

Values can be created from a variety of sources:

	U128FromWords(words ...uint32) U128
	U128From64(v uint64) U128
	U128From32(v uint32) U128
	U128FromBool(v bool) U128
	U128FromHalves(lo, hi U64) U128
	U128Literal(s string) U128
	U128FromString(s string) (out U128, accurate bool, err error)
	U128FromBigInt(v *big.Int) (out U128, accurate bool)

U128Literal is the substitute for a 128-bit constant. A literal larger than
the type can hold does not fail; it resolves to zero:

	U128Literal("340282366920938463463374607431768211455") == MaxU128
	U128Literal("340282366920938463463374607431768211456") == ZeroU128

Multiplication uses Karatsuba's algorithm on the word halves, and MulFull
returns the exact product in the type twice as wide. Division is restoring
binary long division; dividing by zero is not a fault, it returns zero for
both the quotient and the remainder.

Types can be widened and narrowed (AsU256, AsU64, ...), and split into or
merged from halves (Split, FromHalves). Generic code can accept any width
through the Uint constraint.

All types support the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

The per-width files are generated by misc/uintgen.
*/
package uintn

//go:generate go run ./misc/uintgen -out .
