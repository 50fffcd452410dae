package hugeint

import (
	"math/bits"
)

// quoRemAbs performs unsigned division of u by v, returning q and r such that
// u = q*v + r and 0 <= r < v. u must be non-negative and v positive; signs are
// the caller's problem. MinInt is accepted as u and treated as its unsigned
// magnitude, 2^(32*NumLimbs-1).
//
// Single-limb divisors use short division. Everything else uses Knuth's
// Algorithm D (TAOCP vol. 2, 4.3.1), following the divmnu routine from
// Warren, Hacker's Delight, 9-2.
func quoRemAbs(u, v *Int) (q, r Int) {
	n := v.len()
	m := u.len()

	if n == 0 {
		panic("hugeint: division by zero")
	}

	if m < n {
		return q, *u // it's 100% remainder
	}

	if n == 1 {
		q = *u
		r.limbs[0] = q.quoLimb(v.limbs[0])
		return q, r
	}

	// Normalise: shift so the divisor's top limb has its high bit set. The
	// quotient is unchanged, and every qhat estimate below is then at most 2
	// too large.
	s := uint(bits.LeadingZeros32(v.limbs[n-1]))

	var vn [NumLimbs]uint32
	for i := n - 1; i > 0; i-- {
		vn[i] = (v.limbs[i] << s) | (v.limbs[i-1] >> (limbBits - s))
	}
	vn[0] = v.limbs[0] << s

	// The dividend gets one extra guard limb at the top, which is why un has
	// room for NumLimbs+1 limbs: m can be NumLimbs.
	var un [NumLimbs + 1]uint32
	un[m] = u.limbs[m-1] >> (limbBits - s)
	for i := m - 1; i > 0; i-- {
		un[i] = (u.limbs[i] << s) | (u.limbs[i-1] >> (limbBits - s))
	}
	un[0] = u.limbs[0] << s

	vTop, vNext := uint64(vn[n-1]), uint64(vn[n-2])

	for k := m - n; k >= 0; k-- {
		num := uint64(un[k+n])<<limbBits | uint64(un[k+n-1])
		qhat := num / vTop
		rhat := num % vTop

	again:
		if qhat >= limbBase || qhat*vNext > (rhat<<limbBits)|uint64(un[k+n-2]) {
			qhat--
			rhat += vTop
			if rhat < limbBase {
				goto again
			}
		}

		// Multiply and subtract qhat*vn from the window un[k:k+n+1]. borrow
		// is signed: the high half of each product plus whatever the low
		// half took from the current limb.
		var borrow, t int64
		for i := 0; i < n; i++ {
			p := qhat * uint64(vn[i])
			t = int64(un[i+k]) - borrow - int64(p&limbMax)
			un[i+k] = uint32(t)
			borrow = int64(p>>limbBits) - (t >> limbBits)
		}
		t = int64(un[k+n]) - borrow
		un[k+n] = uint32(t)

		q.limbs[k] = uint32(qhat)

		// qhat was one too big: the subtraction went negative. Give back
		// one divisor.
		if t < 0 {
			q.limbs[k]--
			var carry uint64
			for i := 0; i < n; i++ {
				carry += uint64(un[i+k]) + uint64(vn[i])
				un[i+k] = uint32(carry)
				carry >>= limbBits
			}
			un[k+n] += uint32(carry)
		}
	}

	// Denormalise the remainder left in the low n limbs of un.
	for i := 0; i < n-1; i++ {
		r.limbs[i] = (un[i] >> s) | (un[i+1] << (limbBits - s))
	}
	r.limbs[n-1] = un[n-1] >> s

	return q, r
}
