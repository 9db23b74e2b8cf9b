// SPDX-License-Identifier: MIT

// Package elementwise applies the incomplete gamma functions of package
// gammainc across slices, one index at a time.
//
// The input slice holds the integration bounds x; the second argument (the
// shape s) is one of three closed variants, resolved once before the loop:
//
//	Scalar(s)           : the same shape for every element
//	Array(values)       : one shape per element, plain numbers
//	AccessorArray(elems): one shape per element, read through the accessor
//
// An Accessor extracts a number from a possibly structured element. Its
// result is "numeric" when it holds any Go integer or float kind; anything
// else (string, nil, bool, struct…) is not, and the element becomes NaN.
//
// Errors vs NaN:
//   - structural problems (length mismatch, nil accessor) are returned as
//     errors before any element is written;
//   - numeric problems (invalid domain, non-numeric accessor result) become
//     NaN in the output and processing continues.
//
// Elements are independent, so ComputeIntoParallel splits the loop into
// contiguous chunks and yields exactly the sequential result.
package elementwise
