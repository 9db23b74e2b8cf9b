// SPDX-License-Identifier: MIT

package elementwise_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/specfun/elementwise"
	"github.com/katalvlaran/specfun/gammainc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample is a structured element read through an accessor.
type sample struct {
	X     any
	Shape any
}

// sampleAccessor reads X for input slots and Shape for the parameter slot.
func sampleAccessor(e sample, _ int, slot int) any {
	if slot == elementwise.SlotParam {
		return e.Shape
	}
	return e.X
}

// TestComputeInto_Scalar checks the exponential case [0,1,2] with s = 1.
func TestComputeInto_Scalar(t *testing.T) {
	out := make([]float64, 3)
	got, err := elementwise.ComputeInto(out, []float64{0, 1, 2},
		elementwise.Scalar[float64](1), elementwise.Identity[float64])
	require.NoError(t, err)

	assert.Equal(t, 0.0, got[0])
	assert.InDelta(t, 0.6321, got[1], 1e-4)
	assert.InDelta(t, 0.8647, got[2], 1e-4)
	assert.Equal(t, gammainc.Lower(1, 1, true), got[1])
	assert.Equal(t, gammainc.Lower(2, 1, true), got[2])
	assert.Same(t, &out[0], &got[0], "result must alias out")
}

// TestComputeInto_ScalarSlot verifies the accessor sees SlotScalar and the
// element index.
func TestComputeInto_ScalarSlot(t *testing.T) {
	var slots, idx []int
	acc := func(e int, i, slot int) any {
		slots = append(slots, slot)
		idx = append(idx, i)
		return e
	}
	out := make([]float64, 2)
	_, err := elementwise.ComputeInto(out, []int{1, 2}, elementwise.Scalar[int](2), acc)
	require.NoError(t, err)
	assert.Equal(t, []int{elementwise.SlotScalar, elementwise.SlotScalar}, slots)
	assert.Equal(t, []int{0, 1}, idx)
}

// TestComputeInto_Array checks per-element shapes and the upper branch.
func TestComputeInto_Array(t *testing.T) {
	xs := []float64{0.5, 2, 10, -1}
	ss := []float64{1, 3, 3, 2}
	out := make([]float64, len(xs))

	_, err := elementwise.ComputeInto(out, xs, elementwise.Array[float64](ss),
		elementwise.Identity[float64], elementwise.WithBranch(gammainc.BranchUpper))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.Equal(t, gammainc.Upper(xs[i], ss[i], true), out[i], "index %d", i)
	}
	assert.True(t, math.IsNaN(out[3]), "invalid domain maps to NaN")
}

// TestComputeInto_Raw passes the regularized flag through.
func TestComputeInto_Raw(t *testing.T) {
	out := make([]float64, 2)
	_, err := elementwise.ComputeInto(out, []float64{2, 10}, elementwise.Scalar[float64](3),
		elementwise.Identity[float64], elementwise.WithRegularized(false))
	require.NoError(t, err)
	assert.Equal(t, gammainc.Lower(2, 3, false), out[0])
	assert.Equal(t, gammainc.Lower(10, 3, false), out[1])
}

// TestComputeInto_AccessorArray reads both x and s through the accessor.
func TestComputeInto_AccessorArray(t *testing.T) {
	input := []sample{{X: 2.0}, {X: 1}, {X: "oops"}, {X: 3.0}}
	params := []sample{{Shape: 1.0}, {Shape: float32(2)}, {Shape: 1.0}, {Shape: nil}}
	out := make([]float64, len(input))

	_, err := elementwise.ComputeInto(out, input, elementwise.AccessorArray(params), sampleAccessor)
	require.NoError(t, err)

	assert.Equal(t, gammainc.P(2, 1), out[0])
	assert.Equal(t, gammainc.P(1, 2), out[1])
	assert.True(t, math.IsNaN(out[2]), "non-numeric x")
	assert.True(t, math.IsNaN(out[3]), "non-numeric s")
}

// TestComputeInto_NonNumericDoesNotAbort checks a string result at one
// index leaves the others computed.
func TestComputeInto_NonNumericDoesNotAbort(t *testing.T) {
	input := []sample{{X: 1.0}, {X: "two"}, {X: 3.0}}
	out := make([]float64, len(input))

	_, err := elementwise.ComputeInto(out, input, elementwise.Scalar[sample](2), sampleAccessor)
	require.NoError(t, err)
	assert.Equal(t, gammainc.P(1, 2), out[0])
	assert.True(t, math.IsNaN(out[1]))
	assert.Equal(t, gammainc.P(3, 2), out[2])
}

// TestComputeInto_LengthMismatch verifies structural errors leave out untouched.
func TestComputeInto_LengthMismatch(t *testing.T) {
	out := []float64{7, 7, 7}
	_, err := elementwise.ComputeInto(out, []float64{1, 2, 3},
		elementwise.Array[float64]([]float64{1, 2}), elementwise.Identity[float64])
	assert.ErrorIs(t, err, elementwise.ErrLengthMismatch)
	assert.Equal(t, []float64{7, 7, 7}, out, "no element may be written")

	_, err = elementwise.ComputeInto(out, []sample{{}, {}, {}},
		elementwise.AccessorArray([]sample{{}}), sampleAccessor)
	assert.ErrorIs(t, err, elementwise.ErrLengthMismatch)

	_, err = elementwise.ComputeInto(make([]float64, 2), []float64{1, 2, 3},
		elementwise.Scalar[float64](1), elementwise.Identity[float64])
	assert.ErrorIs(t, err, elementwise.ErrLengthMismatch, "out shorter than input")
	assert.Contains(t, err.Error(), "ComputeInto")
}

// TestComputeInto_NilAccessor rejects a missing accessor.
func TestComputeInto_NilAccessor(t *testing.T) {
	_, err := elementwise.ComputeInto(make([]float64, 1), []float64{1},
		elementwise.Scalar[float64](1), nil)
	assert.ErrorIs(t, err, elementwise.ErrNilAccessor)
}

// TestComputeInto_ZeroParam fills NaN for an unset Param.
func TestComputeInto_ZeroParam(t *testing.T) {
	out := make([]float64, 2)
	var p elementwise.Param[float64]
	assert.Equal(t, elementwise.ParamInvalid, p.Kind())

	_, err := elementwise.ComputeInto(out, []float64{1, 2}, p, elementwise.Identity[float64])
	require.NoError(t, err)
	assert.True(t, math.IsNaN(out[0]))
	assert.True(t, math.IsNaN(out[1]))
}

// TestComputeInto_Empty handles empty inputs.
func TestComputeInto_Empty(t *testing.T) {
	got, err := elementwise.ComputeInto([]float64{}, []float64{},
		elementwise.Array[float64](nil), elementwise.Identity[float64])
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestFloats allocates and computes.
func TestFloats(t *testing.T) {
	got, err := elementwise.Floats([]float64{0, 1, 2}, elementwise.Scalar[float64](1),
		elementwise.WithBranch(gammainc.BranchUpper))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, gammainc.Q(1, 1), gammainc.Q(2, 1)}, got)

	_, err = elementwise.Floats([]float64{1}, elementwise.Array[float64]([]float64{1, 2}))
	assert.ErrorIs(t, err, elementwise.ErrLengthMismatch)
}

// TestIdentity_IntegerElements accepts integer slices.
func TestIdentity_IntegerElements(t *testing.T) {
	out := make([]float64, 2)
	_, err := elementwise.ComputeInto(out, []uint8{1, 2}, elementwise.Scalar[uint8](1), elementwise.Identity[uint8])
	require.NoError(t, err)
	assert.Equal(t, gammainc.P(1, 1), out[0])
	assert.Equal(t, gammainc.P(2, 1), out[1])
}

// TestNamedNumericType accepts named float kinds through reflection.
func TestNamedNumericType(t *testing.T) {
	type seconds float64
	out := make([]float64, 1)
	acc := func(e string, _, _ int) any { return seconds(2) }
	_, err := elementwise.ComputeInto(out, []string{"a"}, elementwise.Scalar[string](1), acc)
	require.NoError(t, err)
	assert.Equal(t, gammainc.P(2, 1), out[0])
}
