// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction and the
// incomplete gamma kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Notes:
//   - Numeric policy (validateNaNInf) applies to matrices built through
//     NewDenseFrom. Kernel outputs never validate: NaN is how an invalid
//     (x, s) pair is reported, so it must be storable.
//   - Branch / regularized mirror gammainc and elementwise defaults.
package matrix

import "github.com/katalvlaran/specfun/gammainc"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set
	// for matrices created by NewDense / NewDenseFrom.
	DefaultValidateNaNInf = true

	// DefaultBranch computes the lower incomplete gamma function.
	DefaultBranch = gammainc.BranchLower

	// DefaultRegularized selects P/Q rather than γ/Γ.
	DefaultRegularized = gammainc.DefaultRegularized
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	validateNaNInf bool            // DefaultValidateNaNInf
	branch         gammainc.Branch // DefaultBranch
	regularized    bool            // DefaultRegularized
}

// WithValidateNaNInf enables strict finite-value validation (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on the created matrix.
// Use it for inputs that legitimately carry NaN markers.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithBranch selects the lower or upper function for IncGamma*.
func WithBranch(b gammainc.Branch) Option {
	return func(o *Options) { o.branch = b }
}

// WithRegularized selects the regularized (true) or raw (false) form.
func WithRegularized(regularized bool) Option {
	return func(o *Options) { o.regularized = regularized }
}

// gatherOptions resolves opts over the defaults. Nil options are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		branch:         DefaultBranch,
		regularized:    DefaultRegularized,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
