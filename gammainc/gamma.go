// SPDX-License-Identifier: MIT

package gammainc

import "math"

// Gamma returns Γ(s) for s > 0 and NaN otherwise.
// Values overflow to +Inf for s above ~171.6.
func Gamma(s float64) float64 {
	if !(s > 0) {
		return math.NaN()
	}

	return math.Gamma(s)
}

// LogGamma returns ln Γ(s) for s > 0 and NaN otherwise.
// Γ(s) is positive on that domain, so the sign from math.Lgamma is dropped.
func LogGamma(s float64) float64 {
	if !(s > 0) {
		return math.NaN()
	}
	lg, _ := math.Lgamma(s)

	return lg
}
