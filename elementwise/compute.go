// SPDX-License-Identifier: MIT

package elementwise

import (
	"math"

	"github.com/katalvlaran/specfun/gammainc"
)

// ComputeInto writes the incomplete gamma function of every input element
// into out and returns out.
//
// For index i:
//   - Scalar(s):          x = acc(input[i], i, SlotScalar)
//   - Array(values):      x = acc(input[i], i, SlotInput), s = values[i]
//   - AccessorArray(ps):  x = acc(input[i], i, SlotInput), s = acc(ps[i], i, SlotParam)
//
// out[i] = gammainc.Compute(branch, x, s) when both are numeric, NaN
// otherwise. A zero Param fills out with NaN.
//
// Errors (nothing is written):
//   - ErrLengthMismatch: len(out) != len(input), or a per-element Param
//     whose length differs from len(input).
//   - ErrNilAccessor   : acc is nil.
//
// Example:
//
//	out := make([]float64, 3)
//	_, err := ComputeInto(out, []float64{0, 1, 2}, Scalar[float64](1), Identity[float64])
//	// out ≈ [0, 0.6321, 0.8647]
func ComputeInto[T any](out []float64, input []T, param Param[T], acc Accessor[T], opts ...Option) ([]float64, error) {
	if err := validate(out, input, param, acc); err != nil {
		return out, adapterErrorf(opComputeInto, err)
	}
	o := gatherOptions(opts...)
	newKernel(input, param, acc, o).run(out, 0, len(input))

	return out, nil
}

// Floats computes over a plain float64 slice and allocates the output.
func Floats(input []float64, param Param[float64], opts ...Option) ([]float64, error) {
	out := make([]float64, len(input))
	if _, err := ComputeInto(out, input, param, Identity[float64], opts...); err != nil {
		return nil, adapterErrorf(opFloats, err)
	}

	return out, nil
}

// validate enforces the structural contract before any write.
func validate[T any](out []float64, input []T, param Param[T], acc Accessor[T]) error {
	if acc == nil {
		return ErrNilAccessor
	}
	if len(out) != len(input) {
		return ErrLengthMismatch
	}
	if n := param.Len(); n >= 0 && n != len(input) {
		return ErrLengthMismatch
	}
	if param.kind == ParamArray && param.valid != nil && len(param.valid) != len(param.values) {
		return ErrLengthMismatch
	}

	return nil
}

// kernel binds the resolved variant so the loop does not re-dispatch on
// parameter shape per element.
type kernel[T any] struct {
	input []T
	param Param[T]
	acc   Accessor[T]
	opts  []gammainc.Option
	eval  func(k *kernel[T], i int) float64
}

func newKernel[T any](input []T, param Param[T], acc Accessor[T], o Options) *kernel[T] {
	k := &kernel[T]{
		input: input,
		param: param,
		acc:   acc,
		opts:  []gammainc.Option{gammainc.WithRegularized(o.regularized)},
	}
	branch := o.branch

	switch param.kind {
	case ParamScalar:
		k.eval = func(k *kernel[T], i int) float64 {
			x, ok := numeric(k.acc(k.input[i], i, SlotScalar))
			if !ok {
				return math.NaN()
			}
			return gammainc.Compute(branch, x, k.param.scalar, k.opts...)
		}
	case ParamArray:
		k.eval = func(k *kernel[T], i int) float64 {
			x, ok := numeric(k.acc(k.input[i], i, SlotInput))
			if !ok || (k.param.valid != nil && !k.param.valid[i]) {
				return math.NaN()
			}
			return gammainc.Compute(branch, x, k.param.values[i], k.opts...)
		}
	case ParamAccessorArray:
		k.eval = func(k *kernel[T], i int) float64 {
			x, okX := numeric(k.acc(k.input[i], i, SlotInput))
			s, okS := numeric(k.acc(k.param.elems[i], i, SlotParam))
			if !okX || !okS {
				return math.NaN()
			}
			return gammainc.Compute(branch, x, s, k.opts...)
		}
	default:
		k.eval = func(*kernel[T], int) float64 { return math.NaN() }
	}

	return k
}

// run fills out[lo:hi]; disjoint ranges may run concurrently.
func (k *kernel[T]) run(out []float64, lo, hi int) {
	for i := lo; i < hi; i++ {
		out[i] = k.eval(k, i)
	}
}
