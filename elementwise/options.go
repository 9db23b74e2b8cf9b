// SPDX-License-Identifier: MIT

package elementwise

import (
	"runtime"

	"github.com/katalvlaran/specfun/gammainc"
)

// Defaults (single source of truth).
const (
	// DefaultBranch computes the lower incomplete gamma function.
	DefaultBranch = gammainc.BranchLower

	// DefaultRegularized selects P/Q rather than γ/Γ.
	DefaultRegularized = gammainc.DefaultRegularized

	// DefaultMinChunk is the smallest slice a parallel worker receives.
	DefaultMinChunk = 256
)

const (
	panicWorkersInvalid  = "elementwise: WithWorkers: n must be >= 1"
	panicMinChunkInvalid = "elementwise: WithMinChunk: n must be >= 1"
)

// Option configures ComputeInto and friends.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	branch      gammainc.Branch
	regularized bool
	workers     int // parallel only; GOMAXPROCS by default
	minChunk    int // parallel only
}

// WithBranch selects the lower or upper function.
func WithBranch(b gammainc.Branch) Option {
	return func(o *Options) { o.branch = b }
}

// WithRegularized selects the regularized (true) or raw (false) form.
func WithRegularized(regularized bool) Option {
	return func(o *Options) { o.regularized = regularized }
}

// WithWorkers bounds the goroutines used by ComputeIntoParallel.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithMinChunk sets the smallest contiguous range handed to one worker.
// Panics when n < 1.
func WithMinChunk(n int) Option {
	if n < 1 {
		panic(panicMinChunkInvalid)
	}

	return func(o *Options) { o.minChunk = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		branch:      DefaultBranch,
		regularized: DefaultRegularized,
		workers:     runtime.GOMAXPROCS(0),
		minChunk:    DefaultMinChunk,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
