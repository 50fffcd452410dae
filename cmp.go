package hugeint

// Ordering is derived from subtraction and a sign test: x < n iff x-n is
// negative. The subtraction wraps like any other, so when x and n are far
// enough apart that x-n overflows (operands near MinInt and MaxInt with
// opposite signs), the answer is wrong. For example MaxInt.LessThan(MinInt)
// reports true. Callers who work near the limits need to account for this.

// Cmp compares x to n and returns:
//
//	-1 if x <  n
//	 0 if x == n
//	+1 if x >  n
//
func (x Int) Cmp(n Int) int {
	if x == n {
		return 0
	} else if x.LessThan(n) {
		return -1
	}
	return 1
}

// Equal reports whether x == n. Comparing limbs is the same as testing x-n
// for zero, without the subtraction.
func (x Int) Equal(n Int) bool {
	return x == n
}

func (x Int) LessThan(n Int) bool {
	diff := x.Sub(n)
	return diff.isNegative()
}

func (x Int) GreaterThan(n Int) bool {
	return n.LessThan(x)
}

func (x Int) LessOrEqualTo(n Int) bool {
	return !n.LessThan(x)
}

func (x Int) GreaterOrEqualTo(n Int) bool {
	return !x.LessThan(n)
}
