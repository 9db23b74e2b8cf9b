// SPDX-License-Identifier: MIT

package elementwise

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when out, input and a non-scalar
	// parameter do not share one length. Nothing is written.
	ErrLengthMismatch = errors.New("elementwise: length mismatch")

	// ErrNilAccessor is returned when no accessor is supplied.
	ErrNilAccessor = errors.New("elementwise: nil accessor")
)

// adapterErrorf prefixes err with the operation tag, keeping errors.Is intact.
func adapterErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

const (
	opComputeInto         = "ComputeInto"
	opComputeIntoParallel = "ComputeIntoParallel"
	opFloats              = "Floats"
)
