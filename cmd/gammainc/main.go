// SPDX-License-Identifier: MIT

// Command gammainc evaluates the incomplete gamma functions from the shell.
//
// Usage:
//
//	gammainc lower --x 2 --s 1            # P(1, 2) ≈ 0.8647
//	gammainc upper --x 10 --s 3 --raw     # Γ(3, 10)
//	gammainc table job.yaml               # one line per element
//
// A job file looks like:
//
//	branch: upper        # lower (default) | upper
//	regularized: true    # default true
//	shape: 2.5           # a number, or a list as long as x
//	x: [0, 0.5, 1, 2, 4]
//	workers: 4           # optional, parallel evaluation
//
// Logs go to stderr through slog/tint; --verbose enables debug output with
// the kernel diagnostics of every scalar evaluation.
package main

import (
	"os"

	"github.com/lmittmann/tint"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		newLogger(os.Stderr, false).Error("gammainc failed", tint.Err(err))
		os.Exit(1)
	}
}
