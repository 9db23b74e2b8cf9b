// SPDX-License-Identifier: MIT

package gammainc

import "math"

// Incomplete gamma: domain routing
//
// Description:
//
//	Neither kernel is efficient and stable over the whole (x, s) plane.
//	The power series converges quickly for x ≤ 1.1 or x ≤ s; the continued
//	fraction converges quickly for x > 1.1 and x > s. Each entry point
//	runs the kernel that is stable at (x, s) and, when that kernel belongs
//	to the other branch, returns the complement:
//
//	  P = 1 − Q,   γ(s,x) = Γ(s) − Γ(s,x)
//
// Domain:
//   - Lower(0, s) is exactly 0 and is checked before anything else.
//   - x < 0, s ≤ 0 or a NaN argument yields NaN.
//   - Upper checks the domain first, so Upper(0, s) = 1 (or Γ(s)) only
//     for s > 0.
//   - x = +Inf is the limit: the lower branch is 1 (or Γ(s)), the upper 0.

// Lower returns the lower incomplete gamma function: P(s,x) when
// regularized, γ(s,x) otherwise. Invalid domain yields NaN.
func Lower(x, s float64, regularized bool) float64 {
	return evaluate(BranchLower, x, s, regularized).Value
}

// Upper returns the upper incomplete gamma function: Q(s,x) when
// regularized, Γ(s,x) otherwise. Invalid domain yields NaN.
func Upper(x, s float64, regularized bool) float64 {
	return evaluate(BranchUpper, x, s, regularized).Value
}

// P is the regularized lower incomplete gamma function, Lower(x, s, true).
func P(x, s float64) float64 { return Lower(x, s, true) }

// Q is the regularized upper incomplete gamma function, Upper(x, s, true).
func Q(x, s float64) float64 { return Upper(x, s, true) }

// Compute dispatches on branch. An unknown branch yields NaN.
//
// Example:
//
//	v := Compute(BranchUpper, 10, 3, WithRegularized(false))
func Compute(branch Branch, x, s float64, opts ...Option) float64 {
	return Evaluate(branch, x, s, opts...).Value
}

// Evaluate is Compute with diagnostics. Result.Value is bit-identical to
// what Lower/Upper return for the same arguments.
func Evaluate(branch Branch, x, s float64, opts ...Option) Result {
	o := gatherOptions(opts...)

	return evaluate(branch, x, s, o.regularized)
}

// useFraction reports whether the continued fraction is the stable kernel.
func useFraction(x, s float64) bool {
	return x > SwitchBound && x > s
}

// validDomain reports x ≥ 0 and s > 0; NaN fails both.
func validDomain(x, s float64) bool {
	return x >= 0 && s > 0
}

// complement turns the other branch's value v into this branch's value.
func complement(v, s float64, regularized bool) float64 {
	if regularized {
		return 1 - v
	}

	return Gamma(s) - v
}

func evaluate(branch Branch, x, s float64, regularized bool) Result {
	res := Result{Branch: branch, Regularized: regularized, Value: math.NaN()}

	switch branch {
	case BranchLower:
		if x == 0 {
			res.Value = 0
			return res
		}
		if !validDomain(x, s) {
			return res
		}
		if math.IsInf(x, 1) {
			res.Value = complement(0, s, regularized)
			return res
		}
		if useFraction(x, s) {
			v, n, capped := upperFraction(x, s, regularized)
			res.Value = complement(v, s, regularized)
			res.Algorithm, res.Complement = AlgorithmContinuedFraction, true
			res.Iterations, res.Capped = n, capped
			return res
		}
		res.Value, res.Iterations = lowerSeries(x, s, regularized)
		res.Algorithm = AlgorithmSeries

	case BranchUpper:
		if !validDomain(x, s) {
			return res
		}
		if math.IsInf(x, 1) {
			res.Value = 0
			return res
		}
		if !useFraction(x, s) {
			lower := 0.0
			if x != 0 {
				lower, res.Iterations = lowerSeries(x, s, regularized)
				res.Algorithm = AlgorithmSeries
			}
			res.Value = complement(lower, s, regularized)
			res.Complement = true
			return res
		}
		res.Value, res.Iterations, res.Capped = upperFraction(x, s, regularized)
		res.Algorithm = AlgorithmContinuedFraction
	}

	return res
}
