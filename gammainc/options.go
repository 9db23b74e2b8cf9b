// SPDX-License-Identifier: MIT

package gammainc

// DefaultRegularized is the zero-configuration form: P and Q.
const DefaultRegularized = true

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the effective configuration of Compute / Evaluate.
type Options struct {
	regularized bool // DefaultRegularized
}

// WithRegularized selects the regularized (true) or raw (false) form.
func WithRegularized(regularized bool) Option {
	return func(o *Options) { o.regularized = regularized }
}

// Regularized reports the configured form.
func (o Options) Regularized() bool { return o.regularized }

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{regularized: DefaultRegularized}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
