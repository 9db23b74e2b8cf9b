// SPDX-License-Identifier: MIT

package gammainc

// Numeric policy shared by both branches.
const (
	// Epsilon is the relative convergence threshold of the series and the
	// continued fraction.
	Epsilon = 1e-12

	// MaxIterations bounds the continued fraction. Reaching it is not an
	// error: the best estimate so far is returned.
	MaxIterations = 10000

	// SwitchBound is the x below (or at) which the power series is always
	// preferred, whatever the shape.
	SwitchBound = 1.1

	// tiny replaces an exact zero denominator in the Lentz recurrences.
	tiny = 1e-300
)

// Branch selects which tail of the integral is computed.
type Branch int

const (
	// BranchLower integrates from 0 to x.
	BranchLower Branch = iota

	// BranchUpper integrates from x to +∞.
	BranchUpper
)

// String returns "lower", "upper" or "unknown".
func (b Branch) String() string {
	switch b {
	case BranchLower:
		return "lower"
	case BranchUpper:
		return "upper"
	default:
		return "unknown"
	}
}

// ParseBranch maps "lower"/"upper" to a Branch.
func ParseBranch(name string) (Branch, bool) {
	switch name {
	case "lower", "l", "P", "p":
		return BranchLower, true
	case "upper", "u", "Q", "q":
		return BranchUpper, true
	default:
		return 0, false
	}
}

// Algorithm names the kernel that produced a value.
type Algorithm int

const (
	// AlgorithmNone marks shortcuts: invalid domain (NaN) or x == 0.
	AlgorithmNone Algorithm = iota

	// AlgorithmSeries is the lower-branch power series.
	AlgorithmSeries

	// AlgorithmContinuedFraction is the upper-branch modified Lentz fraction.
	AlgorithmContinuedFraction
)

// String returns a short kernel name for logs.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmSeries:
		return "series"
	case AlgorithmContinuedFraction:
		return "continued-fraction"
	default:
		return "none"
	}
}

// Result is a value together with how it was obtained.
//
// Fields:
//   - Value      : the function value (NaN on invalid domain).
//   - Branch     : the requested branch.
//   - Regularized: whether Value is divided by Γ(s).
//   - Algorithm  : kernel actually run; it may belong to the other branch
//     when the complement identity was used.
//   - Complement : Value was derived as 1 − other (or Γ(s) − other).
//   - Iterations : terms consumed by the kernel.
//   - Capped     : the continued fraction stopped at MaxIterations.
type Result struct {
	Value       float64
	Branch      Branch
	Regularized bool
	Algorithm   Algorithm
	Complement  bool
	Iterations  int
	Capped      bool
}
