// SPDX-License-Identifier: MIT

package gammainc

import "math"

// lowerSeries evaluates the lower branch by power series.
//
// Algorithm:
//
//	γ(s,x) = x^s e^(−x) / s · Σₖ xᵏ / ((s+1)(s+2)…(s+k))
//
//  1. ft = exp(s·ln x − x [− lnΓ(s)]).
//  2. r = s, c = 1, sum = 1.
//  3. repeat: r += 1; c *= x/r; sum += c; until c/sum ≤ Epsilon.
//  4. return sum·ft/s.
//
// The loop always runs at least once. Requires x > 0, s > 0.
// Returns the value and the number of terms added.
func lowerSeries(x, s float64, regularized bool) (float64, int) {
	exponent := s*math.Log(x) - x
	if regularized {
		exponent -= LogGamma(s)
	}
	ft := math.Exp(exponent)

	r, c, sum := s, 1.0, 1.0
	n := 0
	for {
		r++
		c *= x / r
		sum += c
		n++
		if !(c/sum > Epsilon) {
			break
		}
	}

	return sum * ft / s, n
}
