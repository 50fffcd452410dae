// Package seq computes factorials and Fibonacci numbers with hugeint.Int,
// both iteratively and recursively.
package seq

import (
	hugeint "github.com/shabbyrobe/go-hugeint"
)

const (
	// FactorialLimit is the largest n whose factorial fits in a hugeint.Int;
	// 1100! has 2,870 decimal digits.
	FactorialLimit = 1100

	// FibonacciLimit is the largest n whose Fibonacci number fits in a
	// hugeint.Int with room to spare; F(13000) has 2,717 decimal digits.
	FibonacciLimit = 13000

	// FibonacciRecursiveLimit bounds FibonacciRecursive, whose running time
	// grows as F(n) itself; F(30) already takes seconds.
	FibonacciRecursiveLimit = 25
)

var (
	zero = hugeint.FromInt64(0)
	one  = hugeint.FromInt64(1)
	two  = hugeint.FromInt64(2)
)

// FactorialIterative returns n!. Values of n below 1 give 1. Inputs above
// FactorialLimit overflow silently.
func FactorialIterative(n hugeint.Int) hugeint.Int {
	result := one
	for i := n; i.GreaterOrEqualTo(one); i = i.Dec() {
		result.MulAssign(i)
	}
	return result
}

// FactorialRecursive returns n! by recursion, one stack frame per step.
func FactorialRecursive(n hugeint.Int) hugeint.Int {
	if n.LessOrEqualTo(one) {
		return one
	}
	return n.Mul(FactorialRecursive(n.Dec()))
}

// FibonacciIterative returns F(n), with F(0) = 0 and F(1) = 1. Negative n
// gives 0.
func FibonacciIterative(n hugeint.Int) hugeint.Int {
	if n.LessThan(zero) {
		return zero
	}
	if n.LessOrEqualTo(one) {
		return n
	}

	prev, cur := zero, one
	for i := two; i.LessOrEqualTo(n); i = i.Inc() {
		prev, cur = cur, prev.Add(cur)
	}
	return cur
}

// FibonacciRecursive returns F(n) by the textbook double recursion. It takes
// exponential time; callers should keep n at or below FibonacciRecursiveLimit.
func FibonacciRecursive(n hugeint.Int) hugeint.Int {
	if n.LessThan(zero) {
		return zero
	}
	if n.LessOrEqualTo(one) {
		return n
	}
	return FibonacciRecursive(n.Dec()).Add(FibonacciRecursive(n.Sub(two)))
}
