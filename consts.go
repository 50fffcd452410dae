package hugeint

import (
	"math/big"
)

const (
	// NumLimbs is the fixed number of base 2^32 limbs in every Int. It gives
	// a range of roughly ±10^2889.
	NumLimbs = 300

	limbBits = 32
	limbBase = 1 << limbBits // 2^32
	limbMax  = limbBase - 1
	signLimb = limbBase / 2 // top limb >= signLimb means negative

	limbBaseFloat = float64(limbBase)

	// log10(2^32), used to scale limb exponents when float64 overflows.
	log10LimbBase = 9.632959861247398

	// maxDecimalGroups is the number of base-1000 groups needed for any
	// magnitude: NumLimbs * log10(2^32) / 3, plus a little headroom.
	maxDecimalGroups = NumLimbs*3211/1000 + 2

	maxInt64 = 1<<63 - 1
	minInt64 = -1 << 63
)

var (
	MaxInt = func() (v Int) {
		for i := range v.limbs {
			v.limbs[i] = limbMax
		}
		v.limbs[NumLimbs-1] = signLimb - 1
		return v
	}()

	MinInt = func() (v Int) {
		v.limbs[NumLimbs-1] = signLimb
		return v
	}()

	zeroInt Int
	oneInt  = FromInt64(1)
	tenInt  = FromInt64(10)

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	maxBigInt = MaxInt.AsBigInt()
	minBigInt = MinInt.AsBigInt()

	// wrapBigInt is 2^(32*NumLimbs), used to simulate over/underflow.
	wrapBigInt = new(big.Int).Lsh(big1, NumLimbs*limbBits)

	// This specifies the maximum relative error allowed between AsFloat64
	// and the result of the same conversion performed by big.Float.
	//
	// Calculate like so:
	//	return math.Nextafter(1.0, 2.0) - 1.0
	//
	floatDiffLimit, _ = new(big.Float).SetString("2.220446049250313080847263336181640625e-16")
)
