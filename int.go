package hugeint

import (
	"errors"
	"fmt"
)

// Int is a fixed-size signed integer of NumLimbs base 2^32 limbs, stored
// least significant limb first. Negative values are held as their radix
// complement, so the top bit of the top limb is the sign.
//
// Int is a value type: the zero value is 0, assignment copies, and all
// arithmetic methods return new values. Results that do not fit wrap modulo
// (2^32)^NumLimbs without any signal.
type Int struct {
	limbs [NumLimbs]uint32
}

// ErrInvalidFormat is wrapped by every error returned when decimal text
// cannot be parsed.
var ErrInvalidFormat = errors.New("hugeint: invalid decimal format")

// FromInt64 creates an Int from an int64.
func FromInt64(v int64) (out Int) {
	u := uint64(v)
	if v < 0 {
		u = -u // safe for minInt64: -(1<<63) as a uint64 is 1<<63
	}
	for i := 0; u > 0; i++ {
		out.limbs[i] = uint32(u % limbBase)
		u /= limbBase
	}
	if v < 0 {
		out.complement()
	}
	return out
}

func FromInt(v int) Int  { return FromInt64(int64(v)) }
func From32(v int32) Int { return FromInt64(int64(v)) }

func FromUint64(v uint64) (out Int) {
	out.limbs[0] = uint32(v)
	out.limbs[1] = uint32(v >> limbBits)
	return out
}

// FromString creates an Int from a decimal string with an optional leading
// '+' or '-', e.g. "-31415926". Nothing else is accepted: no whitespace, no
// separators, no base prefixes. On failure the returned error wraps
// ErrInvalidFormat and out is zero.
//
// Magnitudes beyond the capacity of an Int wrap silently.
func FromString(s string) (out Int, err error) {
	digits := s
	neg := false
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}

	if len(digits) == 0 {
		return out, fmt.Errorf("hugeint: string %q has no digits: %w", s, ErrInvalidFormat)
	}
	for i := 0; i < len(digits); i++ {
		if c := digits[i]; c < '0' || c > '9' {
			return out, fmt.Errorf("hugeint: string %q contains non-digit %q: %w", s, c, ErrInvalidFormat)
		}
	}

	// Walk the digits from the right, adding digit*10^i for each one.
	powerOfTen := oneInt
	for i := len(digits) - 1; i >= 0; i-- {
		if d := uint32(digits[i] - '0'); d != 0 {
			term := powerOfTen
			term.mulLimb(d)
			out.addAssign(&term)
		}
		powerOfTen.mulLimb(10)
	}

	if neg {
		out.complement()
	}
	return out, nil
}

// MustFromString is like FromString but panics if s is not a valid decimal
// string. Intended for constants and tests.
func MustFromString(s string) Int {
	v, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// FromLimbs is the complement to Int.Limbs(); it creates an Int from raw base
// 2^32 limbs, least significant first. Limbs beyond NumLimbs are ignored.
func FromLimbs(limbs []uint32) (out Int) {
	copy(out.limbs[:], limbs)
	return out
}

// Limbs returns a copy of the raw limb array, least significant first.
// Negative values come back in radix complement form.
func (x Int) Limbs() [NumLimbs]uint32 { return x.limbs }

func (x Int) IsZero() bool { return x == zeroInt }

func (x Int) Sign() int {
	if x == zeroInt {
		return 0
	} else if x.isNegative() {
		return -1
	}
	return 1
}

// Neg returns -x. Negating MinInt overflows and yields MinInt.
func (x Int) Neg() Int {
	x.complement()
	return x
}

// Abs returns |x|. Like Neg, Abs(MinInt) is MinInt.
func (x Int) Abs() Int {
	if x.isNegative() {
		x.complement()
	}
	return x
}

func (x Int) Inc() Int {
	for i := range x.limbs {
		x.limbs[i]++
		if x.limbs[i] != 0 {
			break
		}
	}
	return x
}

func (x Int) Dec() Int {
	for i := range x.limbs {
		x.limbs[i]--
		if x.limbs[i] != limbMax {
			break
		}
	}
	return x
}

// Add returns x+n. Overflow wraps around.
func (x Int) Add(n Int) Int {
	x.addAssign(&n)
	return x
}

// Sub returns x-n, computed as x + (-n). Overflow wraps around.
func (x Int) Sub(n Int) Int {
	n.complement()
	x.addAssign(&n)
	return x
}

// Mul returns the product of x and n using schoolbook long multiplication:
// one short multiply per significant limb of n, shifted into place and
// accumulated.
//
// Overflow wraps around. Because of the radix complement representation this
// also gives the right answer for negative operands.
func (x Int) Mul(n Int) (product Int) {
	top := n.len()
	for i := 0; i < top; i++ {
		if n.limbs[i] == 0 {
			continue
		}
		partial := x
		partial.mulLimb(n.limbs[i])
		partial.shiftLimbsLeft(i)
		product.addAssign(&partial)
	}
	return product
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/by      with the result truncated to zero
//	r = x - by*q  which has the sign of x
//
func (x Int) QuoRem(by Int) (q, r Int) {
	xNeg, byNeg := x.isNegative(), by.isNegative()
	if xNeg {
		x.complement()
	}
	if byNeg {
		by.complement()
	}

	q, r = quoRemAbs(&x, &by)
	if xNeg != byNeg {
		q.complement()
	}
	if xNeg {
		r.complement()
	}
	return q, r
}

// Quo returns the quotient x/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (x Int) Quo(by Int) Int {
	q, _ := x.QuoRem(by)
	return q
}

// Rem returns the remainder of x%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs. Rem implements truncated modulus
// (like Go); see QuoRem for more details.
func (x Int) Rem(by Int) Int {
	_, r := x.QuoRem(by)
	return r
}

// AddAssign sets z to z+n.
func (z *Int) AddAssign(n Int) { z.addAssign(&n) }

// SubAssign sets z to z-n.
func (z *Int) SubAssign(n Int) { *z = z.Sub(n) }

// MulAssign sets z to z*n.
func (z *Int) MulAssign(n Int) { *z = z.Mul(n) }

// QuoAssign sets z to z/n. See QuoRem.
func (z *Int) QuoAssign(n Int) { *z = z.Quo(n) }

// RemAssign sets z to z%n. See QuoRem.
func (z *Int) RemAssign(n Int) { *z = z.Rem(n) }
