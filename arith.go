package hugeint

import (
	"math/bits"
)

// Limb-level primitives. Everything here works on the raw limb array and
// knows nothing about signs: callers that need signed behaviour take the
// absolute value first.

// len returns the number of significant limbs in x, treating x as unsigned.
// Zero has no significant limbs.
func (x *Int) len() int {
	n := NumLimbs
	for n > 0 && x.limbs[n-1] == 0 {
		n--
	}
	return n
}

func (x *Int) isNegative() bool {
	return x.limbs[NumLimbs-1] >= signLimb
}

// complement replaces z with its radix complement, (2^32)^N - z, which is
// its additive inverse. The complement of MinInt is MinInt.
func (z *Int) complement() {
	sum := uint64(1)
	for i := range z.limbs {
		sum += limbMax - uint64(z.limbs[i])
		z.limbs[i] = uint32(sum)
		sum >>= limbBits
	}
}

// addAssign adds n to z, ripple-carrying across every limb. Any carry out of
// the top limb is discarded.
func (z *Int) addAssign(n *Int) {
	var partial uint64
	for i := range z.limbs {
		partial += uint64(z.limbs[i]) + uint64(n.limbs[i])
		z.limbs[i] = uint32(partial)
		partial >>= limbBits
	}
}

// mulLimb multiplies z by m in place. z is assumed to be non-negative;
// overflow past the top limb is discarded.
func (z *Int) mulLimb(m uint32) {
	var partial uint64
	for i := range z.limbs {
		partial += uint64(z.limbs[i]) * uint64(m)
		z.limbs[i] = uint32(partial)
		partial >>= limbBits
	}
}

// quoLimb divides z by d in place and returns the remainder. z is assumed to
// be non-negative and d must not be zero.
func (z *Int) quoLimb(d uint32) (rem uint32) {
	for i := z.len() - 1; i >= 0; i-- {
		z.limbs[i], rem = bits.Div32(rem, z.limbs[i], d)
	}
	return rem
}

// shiftLimbsLeft moves every limb of z up by n places, filling from the
// bottom with zeros. Limbs shifted past the top are lost.
func (z *Int) shiftLimbsLeft(n int) {
	if n <= 0 {
		return
	} else if n >= NumLimbs {
		*z = Int{}
		return
	}
	copy(z.limbs[n:], z.limbs[:NumLimbs-n])
	for i := 0; i < n; i++ {
		z.limbs[i] = 0
	}
}
