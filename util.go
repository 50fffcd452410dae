package hugeint

type RandSource interface {
	Uint64() uint64
}

// Rand returns a non-negative Int with up to limbs random limbs from source.
// limbs is clamped to [0, NumLimbs]; when it is NumLimbs the sign bit is
// cleared so the result stays non-negative.
func Rand(source RandSource, limbs int) (out Int) {
	if limbs > NumLimbs {
		limbs = NumLimbs
	}
	for i := 0; i < limbs; i += 2 {
		v := source.Uint64()
		out.limbs[i] = uint32(v)
		if i+1 < limbs {
			out.limbs[i+1] = uint32(v >> limbBits)
		}
	}
	out.limbs[NumLimbs-1] &^= signLimb
	return out
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Int) Int {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func Larger(a, b Int) Int {
	if a.LessThan(b) {
		return b
	}
	return a
}

func Smaller(a, b Int) Int {
	if b.LessThan(a) {
		return b
	}
	return a
}
