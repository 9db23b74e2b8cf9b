// SPDX-License-Identifier: MIT

// Package matrix provides a small row-major Dense matrix and element-wise
// incomplete gamma kernels over it.
//
// The matrix package provides:
//
//   - Matrix, the minimal interface (Rows, Cols, At, Set, Clone).
//   - Dense, a flat row-major implementation with safe accessors and an
//     optional finite-only numeric policy.
//   - IncGamma (scalar shape) and IncGammaShapes (shape matrix), which
//     evaluate gammainc cell by cell. Invalid cells become NaN; nil inputs
//     and shape mismatches are errors.
//
// Example:
//
//	X, _ := matrix.NewDenseFrom(1, 3, []float64{0, 1, 2})
//	P, _ := matrix.IncGamma(X, 1)                                  // [0, 0.632…, 0.864…]
//	Q, _ := matrix.IncGamma(X, 1, matrix.WithBranch(gammainc.BranchUpper))
package matrix
