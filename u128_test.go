package uintn

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

const maxUint64 uint64 = math.MaxUint64

var u64 = U128From64

func bigU64(u uint64) *big.Int { return new(big.Int).SetUint64(u) }

func u128s(s string) U128 {
	out, acc := U128FromBigInt(bigs(s))
	if !acc {
		panic(fmt.Errorf("uintn: inaccurate u128 %s", s))
	}
	return out
}

func TestU128Scenarios(t *testing.T) {
	tt := assert.WrapTB(t)

	max := U128Literal("340282366920938463463374607431768211455")
	tt.MustEqual(MaxU128, max)
	tt.MustEqual([u128Words]uint32{0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF}, max.Words())

	// One past the maximum overflows to zero.
	tt.MustEqual(ZeroU128, U128Literal("340282366920938463463374607431768211456"))

	tt.MustEqual("0", ZeroU128.String())
	tt.MustEqual("340282366920938463463374607431768211455", MaxU128.String())
	tt.MustEqual(39, len(MaxU128.String()))

	// (2^128-1)^2 == 1 mod 2^128
	tt.MustEqual(OneU128, MaxU128.Mul(MaxU128))
}

func TestU128Literal(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out U128
	}{
		{"0", ZeroU128},
		{"1", OneU128},
		{"18446744073709551615", u64(maxUint64)},
		{"18446744073709551616", U128FromWords(0, 0, 1)},
		{"999999999999999999999999999999999999999", ZeroU128}, // 39 nines > max
		{"1000000000000000000000000000000000000000", ZeroU128},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, U128Literal(tc.in))
		})
	}
}

func TestU128LiteralPanics(t *testing.T) {
	for _, in := range []string{"", "01", "-1", "1e3", "0x10"} {
		t.Run(in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			defer func() {
				r := recover()
				tt.MustAssert(r != nil, "expected panic for %q", in)
				err, ok := r.(error)
				tt.MustAssert(ok)
				tt.MustAssert(Error.Has(err))
			}()
			U128Literal(in)
		})
	}
}

func TestU128FromString(t *testing.T) {
	for idx, tc := range []struct {
		in       string
		out      U128
		accurate bool
		err      bool
	}{
		{"0", ZeroU128, true, false},
		{"0000", ZeroU128, true, false},
		{"00001234", u64(1234), true, false},
		{"340282366920938463463374607431768211455", MaxU128, true, false},
		{"0340282366920938463463374607431768211455", MaxU128, true, false},
		{"340282366920938463463374607431768211456", ZeroU128, false, false},
		{"", ZeroU128, false, true},
		{"12a", ZeroU128, false, true},
		{"-1", ZeroU128, false, true},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, accurate, err := U128FromString(tc.in)
			if tc.err {
				tt.MustAssert(err != nil)
				tt.MustAssert(Error.Has(err))
				return
			}
			tt.MustOK(err)
			tt.MustEqual(tc.accurate, accurate)
			tt.MustEqual(tc.out, out)
		})
	}
}

func TestU128AsBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a U128
		b *big.Int
	}{
		{U128FromWords(2), bigU64(2)},
		{U128FromWords(0xFFFFFFFE, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF), bigs("0xFFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFE")},
		{U128FromWords(0, 0, 1), bigs("18446744073709551616")},
		{U128FromWords(0xFFFFFFFF, 0xFFFFFFFF, 1), bigs("36893488147419103231")}, // (1<<65) - 1
		{U128FromWords(0x89E7FFFF, 0x8AC72304, 1), bigs("28446744073709551615")},
		{U128FromWords(0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0x7FFFFFFF), bigs("170141183460469231731687303715884105727")},
		{MaxU128, bigs("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF")},
		{U128FromWords(0, 0, 0, 0x80000000), bigs("0x 8000000000000000 0000000000000000")},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.a.AsBigInt()
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: %s", v)

			into := big.NewInt(12345)
			tc.a.IntoBigInt(into)
			tt.MustAssert(tc.b.Cmp(into) == 0, "found: %s", into)
		})
	}
}

func TestU128Add(t *testing.T) {
	for _, tc := range []struct {
		a, b, c U128
	}{
		{u64(1), u64(2), u64(3)},
		{u64(10), u64(3), u64(13)},
		{MaxU128, u64(1), u64(0)},                               // Overflow wraps
		{u64(maxUint64), u64(1), u128s("18446744073709551616")}, // lo carries to hi
		{u128s("18446744073709551615"), u128s("18446744073709551615"), u128s("36893488147419103230")},
	} {
		t.Run(fmt.Sprintf("%s+%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.c.Equal(tc.a.Add(tc.b)))
		})
	}
}

func TestU128AddCarry(t *testing.T) {
	tt := assert.WrapTB(t)

	v, carry := MaxU128.AddCarry(OneU128)
	tt.MustEqual(ZeroU128, v)
	tt.MustAssert(carry)

	v, carry = MaxU128.AddCarry(MaxU128)
	tt.MustEqual(MaxU128.Dec(), v)
	tt.MustAssert(carry)

	v, carry = u64(maxUint64).AddCarry(OneU128)
	tt.MustEqual(u128s("18446744073709551616"), v)
	tt.MustAssert(!carry)
}

func TestU128Sub(t *testing.T) {
	for _, tc := range []struct {
		a, b, c U128
	}{
		{u64(3), u64(2), u64(1)},
		{u64(0), u64(1), MaxU128}, // Underflow wraps
		{u128s("18446744073709551616"), u64(1), u64(maxUint64)},
		{MaxU128, MaxU128, ZeroU128},
	} {
		t.Run(fmt.Sprintf("%s-%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Sub(tc.b))

			// Subtraction is addition of the two's complement.
			tt.MustEqual(tc.c, tc.a.Add(tc.b.Neg()))
		})
	}
}

func TestU128Dec(t *testing.T) {
	for _, tc := range []struct {
		a, b U128
	}{
		{u64(1), u64(0)},
		{u64(10), u64(9)},
		{u64(maxUint64), u128s("18446744073709551614")},
		{u64(0), MaxU128},
		{u64(maxUint64).Add(u64(1)), u64(maxUint64)},
	} {
		t.Run(fmt.Sprintf("%s-1=%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			dec := tc.a.Dec()
			tt.MustAssert(tc.b.Equal(dec), "%s - 1 != %s, found %s", tc.a, tc.b, dec)
		})
	}
}

func TestU128Inc(t *testing.T) {
	for _, tc := range []struct {
		a, b U128
	}{
		{u64(1), u64(2)},
		{u64(10), u64(11)},
		{u64(maxUint64), u128s("18446744073709551616")},
		{u64(maxUint64), u64(maxUint64).Add(u64(1))},
		{MaxU128, u64(0)},
	} {
		t.Run(fmt.Sprintf("%s+1=%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			inc := tc.a.Inc()
			tt.MustAssert(tc.b.Equal(inc), "%s + 1 != %s, found %s", tc.a, tc.b, inc)
		})
	}
}

func TestU128Format(t *testing.T) {
	for idx, tc := range []struct {
		v   U128
		fmt string
		out string
	}{
		{u64(1), "%d", "1"},
		{u64(1), "%s", "1"},
		{u64(1), "%v", "1"},
		{u64(1), "%5d", "    1"},
		{u64(1), "%-5d|", "1    |"},
		{u64(1), "%05d", "00001"},
		{u64(1), "%+d", "+1"},
		{ZeroU128, "%d", "0"},
		{MaxU128, "%d", "340282366920938463463374607431768211455"},
		{MaxU128, "%#d", "340282366920938463463374607431768211455"},
		{MaxU128, "%o", "3777777777777777777777777777777777777777777"},
		{MaxU128, "%b", strings.Repeat("1", 128)},
		{MaxU128, "%#o", "03777777777777777777777777777777777777777777"},
		{MaxU128, "%x", "ffffffffffffffffffffffffffffffff"},
		{MaxU128, "%#x", "0xffffffffffffffffffffffffffffffff"},
		{MaxU128, "%#X", "0XFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"},
	} {
		t.Run(fmt.Sprintf("%d/%s/%s", idx, tc.fmt, tc.v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			result := fmt.Sprintf(tc.fmt, tc.v)
			tt.MustEqual(tc.out, result)
		})
	}
}

func TestU128FromBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a   *big.Int
		b   U128
		acc bool
	}{
		{bigU64(2), u64(2), true},
		{bigs("18446744073709551616"), U128FromWords(0, 0, 1), true},                   // 1 << 64
		{bigs("36893488147419103231"), U128FromWords(0xFFFFFFFF, 0xFFFFFFFF, 1), true}, // (1<<65) - 1
		{bigs("28446744073709551615"), u128s("28446744073709551615"), true},
		{bigs("170141183460469231731687303715884105727"), u128s("170141183460469231731687303715884105727"), true},
		{bigs("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF"), MaxU128, true},
		{bigs("0x 1 0000000000000000 00000000000000000"), MaxU128, false},
		{bigs("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFFF"), MaxU128, false},
		{bigs("-1"), ZeroU128, false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.a), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc := U128FromBigInt(tc.a)
			tt.MustEqual(acc, tc.acc)
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: %s, expected %s", v, tc.b)
		})
	}
}

func TestU128FromSize(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(U128From32(4294967295), u128s("4294967295"))
	tt.MustEqual(U128From64(maxUint64), u128s("18446744073709551615"))
	tt.MustEqual(U128FromBool(true), OneU128)
	tt.MustEqual(U128FromBool(false), ZeroU128)
	tt.MustEqual(U128FromWords(1, 2, 3, 4, 5, 6), U128FromWords(1, 2, 3, 4))
}

func TestU128Lsh(t *testing.T) {
	for idx, tc := range []struct {
		u  U128
		by uint
		r  U128
	}{
		{u: u64(2), by: 1, r: u64(4)},
		{u: u64(1), by: 2, r: u64(4)},
		{u: u128s("18446744073709551615"), by: 1, r: u128s("36893488147419103230")}, // (1<<64) - 1
		{u: MaxU128, by: 128, r: ZeroU128},
		{u: MaxU128, by: 1000, r: ZeroU128},
		{u: OneU128, by: 127, r: u128s("0x 8000000000000000 0000000000000000")},

		// These cases were found by the fuzzer:
		{u: u128s("5080864651895"), by: 57, r: u128s("732229764895815899943471677440")},
		{u: u128s("63669103"), by: 85, r: u128s("2463079120908903847397520463364096")},
		{u: u128s("0x1f1ecfd29cb51500c1a0699657"), by: 104, r: u128s("0x69965700000000000000000000000000")},
		{u: u128s("0x4ff0d215cf8c26f26344"), by: 58, r: u128s("0xc348573e309bc98d1000000000000000")},
		{u: u128s("0x6b5823decd7ef067f78e8cc3d8"), by: 74, r: u128s("0xc19fde3a330f60000000000000000000")},
		{u: u128s("0x8b93924e1f7b6ac551d66f18ab520a2"), by: 50, r: u128s("0xdab154759bc62ad48288000000000000")},
		{u: u128s("173760885"), by: 68, r: u128s("51285161209860430747989442560")},
		{u: u128s("213"), by: 65, r: u128s("7858312975400268988416")},
		{u: u128s("0x2203b9f3dbe0afa82d80d998641aa0"), by: 75, r: u128s("0x6c06ccc320d500000000000000000000")},
		{u: u128s("40625"), by: 55, r: u128s("1463669878895411200000")},
	} {
		t.Run(fmt.Sprintf("%d/%s<<%d=%s", idx, tc.u, tc.by, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)

			ub := tc.u.AsBigInt()
			ub.Lsh(ub, tc.by).And(ub, maxBig(U128Bits))

			ru := tc.u.Lsh(tc.by)
			tt.MustEqual(tc.r.String(), ru.String(), "%s != %s; big: %s", tc.r, ru, ub)
			tt.MustEqual(ub.String(), ru.String())
		})
	}
}

func TestU128Rsh(t *testing.T) {
	for _, tc := range []struct {
		u  U128
		by uint
		r  U128
	}{
		{u: u64(2), by: 1, r: u64(1)},
		{u: u64(1), by: 2, r: u64(0)},
		{u: u128s("36893488147419103232"), by: 1, r: u128s("18446744073709551616")}, // (1<<65) - 1
		{u: MaxU128, by: 128, r: ZeroU128},
		{u: MaxU128, by: 127, r: OneU128},

		// These test cases were found by the fuzzer:
		{u: u128s("2465608830469196860151950841431"), by: 104, r: u64(0)},
		{u: u128s("377509308958315595850564"), by: 58, r: u64(1309748)},
		{u: u128s("8504691434450337657905929307096"), by: 74, r: u128s("450234615")},
		{u: u128s("11595557904603123290159404941902684322"), by: 50, r: u128s("10298924295251697538375")},
		{u: u128s("176613673099733424757078556036831904"), by: 75, r: u128s("4674925001596")},
		{u: u128s("3731491383344351937489898072501894878"), by: 112, r: u64(718)},
	} {
		t.Run(fmt.Sprintf("%s>>%d=%s", tc.u, tc.by, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)

			ub := tc.u.AsBigInt()
			ub.Rsh(ub, tc.by)

			ru := tc.u.Rsh(tc.by)
			tt.MustEqual(tc.r.String(), ru.String(), "%s != %s; big: %s", tc.r, ru, ub)
			tt.MustEqual(ub.String(), ru.String())
		})
	}
}

func TestU128ShiftInt(t *testing.T) {
	tt := assert.WrapTB(t)
	v := u64(0xF0)
	tt.MustEqual(u64(0xF00), v.LshInt(4))
	tt.MustEqual(u64(0xF), v.LshInt(-4))
	tt.MustEqual(u64(0xF), v.RshInt(4))
	tt.MustEqual(u64(0xF00), v.RshInt(-4))
	tt.MustEqual(v, v.LshInt(0))
}

func TestU128Mul(t *testing.T) {
	tt := assert.WrapTB(t)

	u := U128From64(maxUint64)
	v := u.Mul(U128From64(maxUint64))

	var v1, v2 big.Int
	v1.SetUint64(maxUint64)
	v2.SetUint64(maxUint64)
	tt.MustEqual(v.String(), v1.Mul(&v1, &v2).String())
}

func TestU128MulFull(t *testing.T) {
	tt := assert.WrapTB(t)

	full := MaxU128.MulFull(MaxU128)
	expected := new(big.Int).Mul(maxBig(128), maxBig(128))
	tt.MustEqual(expected.String(), full.String())

	lo, _ := full.Split()
	tt.MustEqual(MaxU128.Mul(MaxU128), lo)

	full16 := MaxU128.MulFull16(10)
	expected = new(big.Int).Mul(maxBig(128), big.NewInt(10))
	tt.MustEqual(expected.String(), full16.String())
	tt.MustEqual(MaxU128.Mul16(10), full16.AsU128())
}

func TestU128QuoRem(t *testing.T) {
	for idx, tc := range []struct {
		u, by, q, r U128
	}{
		{u: u64(1), by: u64(2), q: u64(0), r: u64(1)},
		{u: u64(10), by: u64(3), q: u64(3), r: u64(1)},

		// Divisor with a zero low half:
		{u: u64(1), by: U128FromWords(0, 0, 1), q: u64(0), r: u64(1)},

		// Equal operands:
		{u128s("0x1234567890123456"), u128s("0x1234567890123456"), u64(1), u64(0)},

		// Dividend smaller than divisor:
		{u128s("0x123456789012345678901234"), u128s("0x222222229012345678901234"), u64(0), u128s("0x123456789012345678901234")},

		// These test cases were found by a fuzzer and exposed a bug in an
		// earlier 128-bit divisor implementation:
		{u128s("3289699161974853443944280720275488"), u128s("9261249991223143249760"), u128s("355211139435"), u128s("96980854802329989888")},
		{u128s("555579170280843546177"), u128s("21475569273528505412"), u64(25), u128s("18689938442630910877")},

		// Division by zero is (0, 0):
		{MaxU128, ZeroU128, ZeroU128, ZeroU128},
		{ZeroU128, ZeroU128, ZeroU128, ZeroU128},
	} {
		t.Run(fmt.Sprintf("%d/%s÷%s=%s,%s", idx, tc.u, tc.by, tc.q, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r := tc.u.QuoRem(tc.by)
			tt.MustEqual(tc.q.String(), q.String())
			tt.MustEqual(tc.r.String(), r.String())
			tt.MustEqual(q, tc.u.Quo(tc.by))
			tt.MustEqual(r, tc.u.Rem(tc.by))

			if tc.by.IsZero() {
				return
			}

			uBig := tc.u.AsBigInt()
			byBig := tc.by.AsBigInt()

			qBig, rBig := new(big.Int).Set(uBig), new(big.Int).Set(uBig)
			qBig = qBig.Quo(qBig, byBig)
			rBig = rBig.Rem(rBig, byBig)

			tt.MustEqual(tc.q.String(), qBig.String())
			tt.MustEqual(tc.r.String(), rBig.String())
		})
	}
}

func TestU128Split(t *testing.T) {
	tt := assert.WrapTB(t)

	v := U128FromWords(1, 2, 3, 4)
	lo, hi := v.Split()
	tt.MustEqual(U64FromWords(1, 2), lo)
	tt.MustEqual(U64FromWords(3, 4), hi)
	tt.MustEqual(v, U128FromHalves(lo, hi))
}

func TestU128Conversions(t *testing.T) {
	tt := assert.WrapTB(t)

	v := U128FromWords(0x11111111, 0x22222222, 0x33333333, 0x44444444)
	tt.MustEqual(U32From32(0x11111111), v.AsU32())
	tt.MustEqual(U64FromWords(0x11111111, 0x22222222), v.AsU64())
	tt.MustEqual(U256FromWords(0x11111111, 0x22222222, 0x33333333, 0x44444444), v.AsU256())
	tt.MustEqual(v, v.AsU1024().AsU128())

	tt.MustEqual(uint32(0x11111111), v.AsUint32())
	tt.MustEqual(uint64(0x2222222211111111), v.AsUint64())
	tt.MustAssert(!v.IsUint64())
	tt.MustAssert(u64(maxUint64).IsUint64())
	tt.MustAssert(v.AsBool())
	tt.MustAssert(!ZeroU128.AsBool())
}

func TestU128Bits(t *testing.T) {
	tt := assert.WrapTB(t)

	v := ZeroU128.SetBit(127, true).SetBit(3, true)
	tt.MustAssert(v.Bit(127))
	tt.MustAssert(v.Bit(3))
	tt.MustAssert(!v.Bit(4))
	tt.MustAssert(!v.Bit(128))
	tt.MustEqual(uint(128), v.BitLen())
	tt.MustEqual(uint(0), v.LeadingZeros())
	tt.MustEqual(uint(3), v.TrailingZeros())

	// Writes past the top are a no-op.
	tt.MustEqual(v, v.SetBit(128, true))
	tt.MustEqual(v, v.SetBit(1<<30, true))

	tt.MustEqual(u64(8), v.SetBit(127, false))
	tt.MustEqual(uint(128), ZeroU128.LeadingZeros())
	tt.MustEqual(uint(128), ZeroU128.TrailingZeros())
}

func TestU128Sign(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(0, ZeroU128.Sign())
	tt.MustEqual(1, OneU128.Sign())
	tt.MustEqual(1, MaxU128.Rsh(1).Sign())
	tt.MustEqual(-1, MaxU128.Sign())
	tt.MustEqual(-1, OneU128.Lsh(127).Sign())
}

func TestU128Traits(t *testing.T) {
	tt := assert.WrapTB(t)
	var v U128
	tt.MustEqual(128, v.Bits())
	tt.MustEqual(38, v.Digits10())
	tt.MustEqual(ZeroU128, v.Min())
	tt.MustEqual(MaxU128, v.Max())
}

func TestU128MarshalJSON(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 5000; i++ {
		u := RandU128(globalRNG)

		bts, err := json.Marshal(u)
		tt.MustOK(err)

		var result U128
		tt.MustOK(json.Unmarshal(bts, &result))
		tt.MustAssert(result.Equal(u))
	}
}

func TestU128UnmarshalJSON(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		out U128
		err bool
	}{
		{`"1234"`, u64(1234), false},
		{`1234`, u64(1234), false},
		{`"340282366920938463463374607431768211455"`, MaxU128, false},
		{`"340282366920938463463374607431768211456"`, ZeroU128, true},
		{`"-1"`, ZeroU128, true},
		{`"1`, ZeroU128, true},
		{`"abc"`, ZeroU128, true},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)

			var v U128
			err := v.UnmarshalJSON([]byte(tc.in))
			if tc.err {
				tt.MustAssert(err != nil)
				tt.MustAssert(Error.Has(err))
				return
			}
			tt.MustOK(err)
			tt.MustEqual(tc.out, v)
		})
	}
}

func TestU128Text(t *testing.T) {
	tt := assert.WrapTB(t)

	bts, err := MaxU128.MarshalText()
	tt.MustOK(err)
	tt.MustEqual(MaxU128.String(), string(bts))

	var v U128
	tt.MustOK(v.UnmarshalText(bts))
	tt.MustEqual(MaxU128, v)

	type wrapper struct {
		V U128 `json:"v"`
	}
	out, err := json.Marshal(wrapper{V: u64(42)})
	tt.MustOK(err)
	tt.MustEqual(`{"v":"42"}`, string(out))
}
