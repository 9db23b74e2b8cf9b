// SPDX-License-Identifier: MIT

package elementwise

import "reflect"

// ParamKind tags the variant held by a Param.
type ParamKind int

const (
	// ParamInvalid is the zero Param; every output element becomes NaN.
	ParamInvalid ParamKind = iota

	// ParamScalar holds one shape for all elements.
	ParamScalar

	// ParamArray holds one plain shape per element.
	ParamArray

	// ParamAccessorArray holds one structured element per index; the shape
	// is read through the accessor with SlotParam.
	ParamAccessorArray
)

// String returns the variant name.
func (k ParamKind) String() string {
	switch k {
	case ParamScalar:
		return "scalar"
	case ParamArray:
		return "array"
	case ParamAccessorArray:
		return "accessor-array"
	default:
		return "invalid"
	}
}

// Param is the shape argument of ComputeInto. T is the element type shared
// with the input slice, since AccessorArray elements go through the same
// accessor. Build it with Scalar, Array, AccessorArray or Detect.
type Param[T any] struct {
	kind   ParamKind
	scalar float64
	values []float64
	valid  []bool // optional mask for values; nil means all valid
	elems  []T
}

// Scalar returns a Param applying s to every element.
func Scalar[T any](s float64) Param[T] {
	return Param[T]{kind: ParamScalar, scalar: s}
}

// Array returns a Param with one shape per element.
func Array[T any](values []float64) Param[T] {
	return Param[T]{kind: ParamArray, values: values}
}

// AccessorArray returns a Param whose shapes are read from elems through
// the accessor (slot SlotParam).
func AccessorArray[T any](elems []T) Param[T] {
	return Param[T]{kind: ParamAccessorArray, elems: elems}
}

// Detect classifies a loosely typed slice the way dynamic callers expect.
//
// Only the FIRST element is inspected: when it is structured (a struct, a
// map, or a pointer to one) the whole slice is an AccessorArray and the
// accessor is applied to every entry, bare numbers included. Anything else
// as the first element (a number, nil, a string, a bool, a slice) makes the
// slice a plain Array: numeric entries are used directly and every other
// entry becomes NaN at its index. A mixed slice whose first element is
// structured but later entries are bare numbers is therefore read through
// the accessor. This is a known limitation kept for compatibility; build the
// Param explicitly when the slice is mixed. An empty slice is an empty Array.
func Detect(values []any) Param[any] {
	if len(values) == 0 {
		return Array[any](nil)
	}
	if structured(values[0]) {
		return AccessorArray(values)
	}

	out := make([]float64, len(values))
	valid := make([]bool, len(values))
	for i, v := range values {
		out[i], valid[i] = numeric(v)
	}

	return Param[any]{kind: ParamArray, values: out, valid: valid}
}

// structured reports whether v is a record the accessor can read from.
func structured(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}

	return rv.Kind() == reflect.Struct || rv.Kind() == reflect.Map
}

// Kind reports the held variant.
func (p Param[T]) Kind() ParamKind { return p.kind }

// Len is the number of per-element shapes, or -1 for scalar and invalid
// params, which do not constrain the input length.
func (p Param[T]) Len() int {
	switch p.kind {
	case ParamArray:
		return len(p.values)
	case ParamAccessorArray:
		return len(p.elems)
	default:
		return -1
	}
}
