package hugeint

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FromBigInt creates an Int from a big.Int. Values outside [MinInt, MaxInt]
// wrap modulo (2^32)^NumLimbs, the same as any other overflow, and set
// accurate to 'false'.
func FromBigInt(v *big.Int) (out Int, accurate bool) {
	accurate = v.Cmp(maxBigInt) <= 0 && v.Cmp(minBigInt) >= 0

	bts := v.Bytes() // big-endian magnitude
	if len(bts) > NumLimbs*4 {
		bts = bts[len(bts)-NumLimbs*4:]
	}

	var i int
	for end := len(bts); end > 0; end -= 4 {
		start := end - 4
		if start < 0 {
			start = 0
		}
		var limb uint32
		for _, b := range bts[start:end] {
			limb = limb<<8 | uint32(b)
		}
		out.limbs[i] = limb
		i++
	}

	if v.Sign() < 0 {
		out.complement()
	}
	return out, accurate
}

// FromFloat64 creates an Int from a float64.
//
// Any fractional portion will be truncated towards zero.
//
// NaN is treated as 0, +Inf as MaxInt and -Inf as MinInt; in each case
// inRange is set to false. Every finite float64 fits in an Int.
func FromFloat64(f float64) (out Int, inRange bool) {
	if f != f { // f != f == isnan
		return out, false
	} else if math.IsInf(f, 1) {
		return MaxInt, false
	} else if math.IsInf(f, -1) {
		return MinInt, false
	}

	neg := f < 0
	frac, exp := math.Frexp(math.Abs(math.Trunc(f)))
	if frac == 0 {
		return out, true
	}

	// |f| == mant * 2^shift, with mant holding the 53 significant bits.
	mant := uint64(frac * (1 << 53))
	shift := exp - 53

	if shift <= 0 {
		mant >>= uint(-shift)
		out.limbs[0] = uint32(mant)
		out.limbs[1] = uint32(mant >> limbBits)

	} else {
		idx, off := shift/limbBits, uint(shift%limbBits)
		lo, hi := mant<<off, mant>>(64-off)
		for j, limb := range [3]uint32{uint32(lo), uint32(lo >> limbBits), uint32(hi)} {
			if idx+j < NumLimbs {
				out.limbs[idx+j] = limb
			}
		}
	}

	if neg {
		out.complement()
	}
	return out, true
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (x Int) IntoBigInt(b *big.Int) {
	neg := x.isNegative()
	if neg {
		x.complement() // MinInt stays put, which is its correct unsigned magnitude
	}

	var buf [NumLimbs * 4]byte
	top := x.len()
	for i := 0; i < top; i++ {
		binary.BigEndian.PutUint32(buf[len(buf)-4*(i+1):], x.limbs[i])
	}
	b.SetBytes(buf[len(buf)-4*top:])

	if neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (x Int) AsBigInt() *big.Int {
	b := new(big.Int)
	x.IntoBigInt(b)
	return b
}

func (x Int) AsBigFloat() *big.Float {
	return new(big.Float).SetInt(x.AsBigInt())
}

// AsFloat64 returns an approximation of x, accumulating limb[i] * (2^32)^i
// from the least significant limb up. There is no precision guarantee, and
// once |x| passes math.MaxFloat64 the result is ±Inf.
func (x Int) AsFloat64() float64 {
	neg := x.isNegative()
	if neg {
		x.complement()
	}

	var out float64
	pow := 1.0
	top := x.len()
	for i := 0; i < top; i++ {
		// zero limbs are skipped so an infinite pow can't produce 0*Inf.
		if x.limbs[i] != 0 {
			out += float64(x.limbs[i]) * pow
		}
		pow *= limbBaseFloat
	}

	if neg {
		return -out
	}
	return out
}

// AsInt64 truncates the Int to fit in an int64. Values outside the range
// will over/underflow. See IsInt64() if you want to check before you convert.
func (x Int) AsInt64() int64 {
	return int64(uint64(x.limbs[1])<<limbBits | uint64(x.limbs[0]))
}

// IsInt64 reports whether x can be represented as an int64: every limb
// above the low two must be a sign extension of the int64's top bit.
func (x Int) IsInt64() bool {
	var ext uint32
	if x.limbs[1] >= signLimb {
		ext = limbMax
	}
	for _, limb := range x.limbs[2:] {
		if limb != ext {
			return false
		}
	}
	return true
}

// decimalGroups returns the base-1000 digits of |x|, least significant group
// first, found by repeated short division by 1000.
func (x Int) decimalGroups() (neg bool, groups []uint32) {
	neg = x.isNegative()
	if neg {
		x.complement()
	}
	groups = make([]uint32, 0, maxDecimalGroups)
	for x != zeroInt {
		groups = append(groups, x.quoLimb(1000))
	}
	return neg, groups
}

func (x Int) formatDecimal(sep string) string {
	if x == zeroInt {
		return "0"
	}

	neg, groups := x.decimalGroups()

	var sb strings.Builder
	sb.Grow(len(groups) * (3 + len(sep)))
	if neg {
		sb.WriteByte('-')
	}

	// first set of thousands has no leading zeros
	last := len(groups) - 1
	sb.WriteString(strconv.FormatUint(uint64(groups[last]), 10))

	var pad [3]byte
	for i := last - 1; i >= 0; i-- {
		g := groups[i]
		pad[0], pad[1], pad[2] = byte('0'+g/100), byte('0'+g/10%10), byte('0'+g%10)
		sb.WriteString(sep)
		sb.Write(pad[:])
	}
	return sb.String()
}

// String returns x in decimal with the digits grouped in thousands, e.g.
// "-1,234,567". Use Text for the same digits without separators.
func (x Int) String() string {
	return x.formatDecimal(",")
}

// Text returns x in plain decimal, e.g. "-1234567". This is the form
// accepted by FromString.
func (x Int) Text() string {
	return x.formatDecimal("")
}

// RawString returns the raw limbs of x, most significant first, each as a
// zero-padded 10 digit decimal number, separated by spaces. Negative values
// show their radix complement limbs. Zero is "0".
func (x Int) RawString() string {
	top := x.len()
	if top == 0 {
		return "0"
	}

	var sb strings.Builder
	sb.Grow(top * 11)
	for i := top - 1; i >= 0; i-- {
		if i != top-1 {
			sb.WriteByte(' ')
		}
		s := strconv.FormatUint(uint64(x.limbs[i]), 10)
		sb.WriteString(strings.Repeat("0", 10-len(s)))
		sb.WriteString(s)
	}
	return sb.String()
}

// DecimalDigits returns the number of decimal digits in x, computed as
// ceil(log10(|x|)) from a float approximation. Values in (-10, 10) report 1.
//
// The approximation can be off by one when |x| is at or extremely close to a
// power of ten.
func (x Int) DecimalDigits() int {
	if x.GreaterThan(tenInt.Neg()) && x.LessThan(tenInt) {
		return 1
	}
	return int(math.Ceil(x.approxLog10()))
}

// approxLog10 returns log10(|x|) for non-zero x. It uses AsFloat64 while that
// stays finite and otherwise scales the top three significant limbs by the
// limb exponent.
func (x Int) approxLog10() float64 {
	if f := x.AsFloat64(); !math.IsInf(f, 0) {
		return math.Log10(math.Abs(f))
	}

	x = x.Abs()
	top := x.len()
	f := float64(x.limbs[top-1])*limbBaseFloat + float64(x.limbs[top-2]) + float64(x.limbs[top-3])/limbBaseFloat
	return math.Log10(f) + float64(top-2)*log10LimbBase
}

// Format implements fmt.Formatter. %v and %s produce the grouped String
// form; every other verb is handled by big.Int, so %d, %x, %o, %b and their
// flags all work.
func (x Int) Format(s fmt.State, c rune) {
	switch c {
	case 'v', 's':
		out := x.String()
		if w, ok := s.Width(); ok && w > len(out) {
			pad := strings.Repeat(" ", w-len(out))
			if s.Flag('-') {
				out += pad
			} else {
				out = pad + out
			}
		}
		fmt.Fprint(s, out)
	default:
		x.AsBigInt().Format(s, c)
	}
}

// Scan implements fmt.Scanner. It reads one whitespace-delimited token and
// parses it with FromString, so fmt.Fscan(r, &x) works. Invalid tokens
// return an error wrapping ErrInvalidFormat and leave z untouched. Running
// out of input returns io.EOF, which fmt reports as io.ErrUnexpectedEOF.
func (z *Int) Scan(state fmt.ScanState, verb rune) error {
	tok, err := state.Token(true, nil)
	if err != nil {
		return err
	} else if len(tok) == 0 {
		return io.EOF
	}
	v, err := FromString(string(tok))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.Text()), nil
}

func (z *Int) UnmarshalText(bts []byte) (err error) {
	v, err := FromString(string(bts))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

func (x Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.Text() + `"`), nil
}

func (z *Int) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("hugeint: invalid JSON %q: %w", string(bts), ErrInvalidFormat)
		}
		bts = bts[1 : ln-1]
	}

	v, err := FromString(string(bts))
	if err != nil {
		return err
	}
	*z = v
	return nil
}
