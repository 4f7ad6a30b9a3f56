// Package arith holds the bounded integer arithmetic the evaluator is
// built on. Everything here returns (value, ok); ok=false means the
// operation has no result in the engine's domain, never an overflow.
package arith

import "math"

// PowCeiling caps the result of the ^ operator. Larger results make the
// candidate inapplicable rather than saturating.
const PowCeiling = 10000

// FactorialMax is the largest n with a defined factorial; 10! = 3628800
// keeps every intermediate far below overflow.
const FactorialMax = 10

// RootTolerance is how close the real b-th root must be to an integer
// for the root operator to apply.
const RootTolerance = 1e-5

// Factorial returns n! for 0 <= n <= FactorialMax. Outside that domain
// ok is false.
func Factorial(n int) (int, bool) {
	if n < 0 || n > FactorialMax {
		return 0, false
	}
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f, true
}

// ExactSqrt returns the integer square root of n when n is a perfect
// square; ok is false for negative n or inexact roots.
func ExactSqrt(n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	r := int(math.Round(math.Sqrt(float64(n))))
	if r*r != n {
		return 0, false
	}
	return r, true
}

// Root returns the b-th root of a when b >= 2, a >= 0 and the real root
// is within RootTolerance of an integer.
func Root(a, b int) (int, bool) {
	if b < 2 || a < 0 {
		return 0, false
	}
	f := math.Pow(float64(a), 1/float64(b))
	r := math.Round(f)
	if math.Abs(f-r) > RootTolerance {
		return 0, false
	}
	return int(r), true
}

// Pow returns a^b under PowCeiling. Negative exponents and oversized
// results are inapplicable.
func Pow(a, b int) (int, bool) {
	if b < 0 {
		return 0, false
	}
	r := 1
	for i := 0; i < b; i++ {
		r *= a
		if r > PowCeiling || r < -PowCeiling {
			return 0, false
		}
	}
	if r > PowCeiling {
		return 0, false
	}
	return r, true
}
