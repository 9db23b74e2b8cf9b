// SPDX-License-Identifier: MIT

package gammainc

import "math"

// upperFraction evaluates the upper branch by the modified Lentz method.
//
// Algorithm:
//
//	Γ(s,x) = x^s e^(−x) / f,  f = b₀ + a₁/(b₁ + a₂/(b₂ + …))
//	aᵢ = i(s − i),  bᵢ = 2i + 1 + x − s
//
//  1. f = C = b₀, D = 0.
//  2. for i = 1 … MaxIterations−1:
//     D = bᵢ + aᵢD;  C = bᵢ + aᵢ/C;  D = 1/D
//     Δ = C·D;  f *= Δ;  stop when |Δ − 1| < Epsilon.
//  3. return exp(s·ln x − x [− lnΓ(s)] − ln f).
//
// Exact zeros in D or C are replaced by tiny. Only called with x > s, so
// b₀ > 1. Returns the value, the number of iterations and whether the
// iteration cap was hit before convergence.
func upperFraction(x, s float64, regularized bool) (float64, int, bool) {
	f := 1 + x - s
	c := f
	d := 0.0

	converged := false
	i := 1
	for ; i < MaxIterations; i++ {
		a := float64(i) * (s - float64(i))
		b := float64(2*i+1) + x - s
		d = b + a*d
		if d == 0 {
			d = tiny
		}
		c = b + a/c
		if c == 0 {
			c = tiny
		}
		d = 1 / d
		chg := c * d
		f *= chg
		if math.Abs(chg-1) < Epsilon {
			converged = true
			break
		}
	}

	exponent := s*math.Log(x) - x - math.Log(f)
	if regularized {
		exponent -= LogGamma(s)
	}
	iterations := i
	if !converged {
		iterations = MaxIterations - 1
	}

	return math.Exp(exponent), iterations, !converged
}
