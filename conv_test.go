package hugeint

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestString(t *testing.T) {
	for idx, tc := range []struct {
		a    Int
		str  string
		text string
	}{
		{i64(0), "0", "0"},
		{i64(1), "1", "1"},
		{i64(-1), "-1", "-1"},
		{i64(999), "999", "999"},
		{i64(1000), "1,000", "1000"},
		{i64(-1000), "-1,000", "-1000"},
		{i64(1000001), "1,000,001", "1000001"},
		{i64(-1234567), "-1,234,567", "-1234567"},
		{i64(12345678), "12,345,678", "12345678"},
		{i64(math.MinInt64), "-9,223,372,036,854,775,808", "-9223372036854775808"},
		{bigInt("12345678901234567891"), "12,345,678,901,234,567,891", "12345678901234567891"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.text), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.str, tc.a.String())
			tt.MustEqual(tc.text, tc.a.Text())
		})
	}
}

func TestStringExtremes(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(maxBigInt.String(), MaxInt.Text())
	tt.MustEqual(minBigInt.String(), MinInt.Text())
	tt.MustEqual(groupThousands(minBigInt.String()), MinInt.String())
	tt.MustEqual(2890, len(MaxInt.Text()))
}

func TestTextRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(fuzzSeed))

	for _, v := range []Int{i64(0), MaxInt, MinInt, MinInt.Inc()} {
		tt.MustEqual(v, MustFromString(v.Text()))
	}
	for i := 0; i < 50; i++ {
		v := randInt(rng, NumLimbs)
		tt.MustEqual(v, MustFromString(v.Text()))
	}
}

func TestRawString(t *testing.T) {
	for idx, tc := range []struct {
		a   Int
		out string
	}{
		{i64(0), "0"},
		{i64(1), "0000000001"},
		{i64(4294967295), "4294967295"},
		{FromUint64(1 << 32), "0000000001 0000000000"},
		{FromLimbs([]uint32{7, 0, 12}), "0000000012 0000000000 0000000007"},
		{i64(-1), strings.TrimSpace(strings.Repeat("4294967295 ", NumLimbs))},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.a), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.a.RawString())
		})
	}
}

func TestDecimalDigits(t *testing.T) {
	for idx, tc := range []struct {
		a   Int
		out int
	}{
		{i64(0), 1},
		{i64(1), 1},
		{i64(9), 1},
		{i64(-9), 1},
		{i64(11), 2},
		{i64(-11), 2},
		{i64(99), 2},
		{i64(101), 3},
		{i64(12345), 5},

		// Exact powers of ten are undercounted by one: the count is
		// ceil(log10(|x|)), which equals log10(|x|) there. Intentional.
		{i64(10), 1},
		{i64(-10), 1},
		{i64(100), 2},
		{i64(1000), 3},

		{i64(-12345), 5},
		{i64(math.MaxInt64), 19},
		{MaxInt, 2890},
		{MinInt, 2890},
		{MaxInt.Quo(i64(1000)), 2887},
		{bigInt("1" + strings.Repeat("2", 399)), 400}, // past float64's range
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.a), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.a.DecimalDigits())
		})
	}
}

func TestAsFloat64(t *testing.T) {
	for idx, tc := range []struct {
		a   Int
		out float64
	}{
		{i64(0), 0},
		{i64(1), 1},
		{i64(-1), -1},
		{i64(12345), 12345},
		{i64(-1234567), -1234567},
		{FromUint64(1 << 40), 1 << 40},
		{FromLimbs([]uint32{0, 0, 0, 1}), math.Ldexp(1, 96)},
		{ints("0x1" + strings.Repeat("0", 250)), math.Ldexp(1, 1000)},
		{MaxInt, math.Inf(1)},
		{MinInt, math.Inf(-1)},
	} {
		t.Run(fmt.Sprintf("%d/float64(%s)", idx, tc.a), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.a.AsFloat64())
		})
	}
}

func TestAsFloat64Epsilon(t *testing.T) {
	for _, tc := range []struct {
		a Int
	}{
		{bigInt("120")},
		{bigInt("12034267329883109062163657840918528")},
		{bigInt("-2384067163226812360730")},
		{MaxInt.Quo(ints("0x1" + strings.Repeat("0", 2150)))},
	} {
		t.Run(fmt.Sprintf("float64(%s)", tc.a), func(t *testing.T) {
			tt := assert.WrapTB(t)

			af := tc.a.AsFloat64()
			bf := new(big.Float).SetFloat64(af)
			rf := tc.a.AsBigFloat()

			diff := new(big.Float).Sub(rf, bf)
			pct := new(big.Float).Quo(diff, rf)
			pct.Abs(pct)
			tt.MustAssert(pct.Cmp(floatDiffLimit) < 0, "%s: %.20f > %.20f", tc.a, diff, floatDiffLimit)
		})
	}
}

func TestFromFloat64(t *testing.T) {
	for idx, tc := range []struct {
		f       float64
		out     Int
		inRange bool
	}{
		{0, i64(0), true},
		{math.Copysign(0, -1), i64(0), true},
		{0.3, i64(0), true},
		{-0.9, i64(0), true},
		{1, i64(1), true},
		{1.5, i64(1), true},
		{-1.5, i64(-1), true},
		{12345.678, i64(12345), true},
		{math.Ldexp(1, 63), bigInt("9223372036854775808"), true},
		{-math.Ldexp(1, 64), bigInt("-18446744073709551616"), true},
		{math.Ldexp(1, 96), FromLimbs([]uint32{0, 0, 0, 1}), true},
		{1e300, bigInt(bigFloatString(1e300)), true},
		{math.MaxFloat64, bigInt(bigFloatString(math.MaxFloat64)), true},
		{-math.MaxFloat64, bigInt(bigFloatString(-math.MaxFloat64)), true},

		{math.NaN(), i64(0), false},
		{math.Inf(1), MaxInt, false},
		{math.Inf(-1), MinInt, false},
	} {
		t.Run(fmt.Sprintf("%d/fromfloat64(%g)", idx, tc.f), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, inRange := FromFloat64(tc.f)
			tt.MustEqual(tc.inRange, inRange)
			tt.MustEqual(tc.out, v)
		})
	}
}

func bigFloatString(f float64) string {
	b, _ := new(big.Float).SetFloat64(f).Int(nil)
	return b.String()
}

func TestFromBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a   *big.Int
		b   Int
		acc bool
	}{
		{bigI64(0), i64(0), true},
		{bigI64(2), i64(2), true},
		{bigI64(-2), i64(-2), true},
		{bigs("0x 1 00000000"), FromLimbs([]uint32{0, 1}), true},
		{bigs("-18446744073709551616"), i64(0).Sub(FromLimbs([]uint32{0, 0, 1})), true},
		{maxBigInt, MaxInt, true},
		{minBigInt, MinInt, true},

		{new(big.Int).Add(maxBigInt, big1), MinInt, false},
		{new(big.Int).Sub(minBigInt, big1), MaxInt, false},
		{wrapBigInt, i64(0), false},
		{new(big.Int).Add(wrapBigInt, big.NewInt(7)), i64(7), false},
		{new(big.Int).Neg(new(big.Int).Add(wrapBigInt, big.NewInt(7))), i64(-7), false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.a), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc := FromBigInt(tc.a)
			tt.MustEqual(tc.acc, acc)
			tt.MustEqual(tc.b, v)
		})
	}
}

func TestAsBigInt(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("0", i64(0).AsBigInt().String())
	tt.MustEqual("-1", i64(-1).AsBigInt().String())
	tt.MustEqual(0, MinInt.AsBigInt().Cmp(new(big.Int).Neg(new(big.Int).Lsh(big1, NumLimbs*limbBits-1))))

	// IntoBigInt reuses its target.
	b := big.NewInt(99)
	i64(-12345).IntoBigInt(b)
	tt.MustEqual("-12345", b.String())
}

func TestAsInt64(t *testing.T) {
	for idx, tc := range []struct {
		a    Int
		out  int64
		isIt bool
	}{
		{i64(-1), -1, true},
		{i64(minInt64), minInt64, true},
		{i64(maxInt64), maxInt64, true},
		{bigInt("9223372036854775808"), minInt64, false},  // (maxInt64 + 1) overflows to min
		{bigInt("-9223372036854775809"), maxInt64, false}, // (minInt64 - 1) underflows to max
		{FromUint64(math.MaxUint64), -1, false},
		{MaxInt, -1, false},
		{MinInt, 0, false},
	} {
		t.Run(fmt.Sprintf("%d/int64(%s)=%d", idx, tc.a, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.a.AsInt64())
			tt.MustEqual(tc.isIt, tc.a.IsInt64())
		})
	}
}

func TestFormat(t *testing.T) {
	for idx, tc := range []struct {
		v   Int
		fmt string
		out string
	}{
		{i64(1), "%d", "1"},
		{i64(1), "%s", "1"},
		{i64(1), "%v", "1"},
		{i64(-1234567), "%d", "-1234567"},
		{i64(-1234567), "%v", "-1,234,567"},
		{i64(-1234567), "%s", "-1,234,567"},
		{i64(1234), "%8v", "   1,234"},
		{i64(1234), "%-8v|", "1,234   |"},
		{i64(255), "%x", "ff"},
		{i64(255), "%#X", "0XFF"},
		{i64(-8), "%o", "-10"},
		{i64(5), "%b", "101"},
		{i64(42), "%05d", "00042"},
	} {
		t.Run(fmt.Sprintf("%d/%s/%s", idx, tc.fmt, tc.v.Text()), func(t *testing.T) {
			tt := assert.WrapTB(t)
			result := fmt.Sprintf(tc.fmt, tc.v)
			tt.MustEqual(tc.out, result)
		})
	}
}

func TestScan(t *testing.T) {
	tt := assert.WrapTB(t)

	var a, b Int
	n, err := fmt.Sscan("  12345678901234567890\n-42 ", &a, &b)
	tt.MustOK(err)
	tt.MustEqual(2, n)
	tt.MustEqual(bigInt("12345678901234567890"), a)
	tt.MustEqual(i64(-42), b)

	c := i64(7)
	_, err = fmt.Sscan("12x", &c)
	tt.MustAssert(errors.Is(err, ErrInvalidFormat), "%v", err)
	tt.MustEqual(i64(7), c)

	_, err = fmt.Sscan("  \n ", &c)
	tt.MustEqual(io.ErrUnexpectedEOF, err)
}

func TestJSON(t *testing.T) {
	type wrapper struct {
		V Int `json:"v"`
	}

	for idx, tc := range []struct {
		in  string
		out Int
	}{
		{`{"v":"0"}`, i64(0)},
		{`{"v":"-1234567"}`, i64(-1234567)},
		{`{"v":-1234567}`, i64(-1234567)},
		{`{"v":12345678901234567890}`, bigInt("12345678901234567890")},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			var w wrapper
			tt.MustOK(json.Unmarshal([]byte(tc.in), &w))
			tt.MustEqual(tc.out, w.V)

			bts, err := json.Marshal(w)
			tt.MustOK(err)
			tt.MustEqual(fmt.Sprintf(`{"v":"%s"}`, tc.out.Text()), string(bts))
		})
	}

	for idx, in := range []string{`{"v":"1,000"}`, `{"v":""}`, `{"v":1.5}`, `{"v":true}`} {
		t.Run(fmt.Sprintf("invalid/%d/%s", idx, in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			var w wrapper
			tt.MustAssert(json.Unmarshal([]byte(in), &w) != nil)
		})
	}
}

func TestText(t *testing.T) {
	tt := assert.WrapTB(t)

	bts, err := MinInt.MarshalText()
	tt.MustOK(err)
	tt.MustEqual(minBigInt.String(), string(bts))

	var v Int
	tt.MustOK(v.UnmarshalText(bts))
	tt.MustEqual(MinInt, v)

	err = v.UnmarshalText([]byte("-"))
	tt.MustAssert(errors.Is(err, ErrInvalidFormat))
}
