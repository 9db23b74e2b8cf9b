// SPDX-License-Identifier: MIT

package elementwise

import "reflect"

// Slot values passed as the third accessor argument.
const (
	// SlotScalar marks an input element read while the shape is a scalar.
	SlotScalar = -1

	// SlotInput marks an input element read against a per-element shape.
	SlotInput = 0

	// SlotParam marks a parameter element of an AccessorArray.
	SlotParam = 1
)

// Accessor extracts a value from elem at index. slot tells the accessor
// whether it is reading the input (SlotScalar, SlotInput) or the shape
// parameter (SlotParam). A non-numeric result yields NaN for that index.
type Accessor[T any] func(elem T, index, slot int) any

// Number is the set of element types Identity accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Identity returns the element itself; use it for plain numeric slices.
func Identity[T Number](elem T, _, _ int) any { return elem }

// numeric converts an accessor result to float64. Named numeric types are
// accepted through reflection.
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case int16:
		return float64(n), true
	case int8:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint8:
		return float64(n), true
	case nil:
		return 0, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	default:
		return 0, false
	}
}
