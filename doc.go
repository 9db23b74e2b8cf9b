// Package specfun is a small special-functions toolkit centred on the
// incomplete gamma function: scalar kernels, slice and matrix adapters,
// and a command-line front end.
//
// 🚀 What is in specfun?
//
//	A pure-Go, allocation-light library that brings together:
//		• gammainc/   : lower/upper incomplete gamma, regularized or raw
//		• elementwise/: the same over slices, with accessors and a parallel loop
//		• matrix/     : a row-major Dense matrix and cell-wise gamma kernels
//		• cmd/gammainc: evaluate values and YAML batch jobs from the shell
//
// ✨ Why choose specfun?
//
//   - Numerically stable: series or continued fraction, picked per (x, s)
//   - NaN on bad input, errors only for structural mistakes
//   - Safe for concurrent use; no global state
//
//	go get github.com/katalvlaran/specfun
package specfun
