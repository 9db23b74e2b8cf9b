// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/specfun/elementwise"
	"github.com/katalvlaran/specfun/gammainc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

// writeJob stores a job file in a temp dir and returns its path.
func writeJob(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func parseValue(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	require.NoError(t, err)

	return v
}

func TestEval_Lower(t *testing.T) {
	out, _, err := run(t, "lower", "--x", "2", "--s", "1")
	require.NoError(t, err)
	assert.Equal(t, gammainc.P(2, 1), parseValue(t, out))
}

func TestEval_UpperRaw(t *testing.T) {
	out, _, err := run(t, "upper", "--x", "10", "--s", "3", "--raw")
	require.NoError(t, err)
	assert.Equal(t, gammainc.Upper(10, 3, false), parseValue(t, out))
}

func TestEval_DomainWarnsAndPrintsNaN(t *testing.T) {
	out, logs, err := run(t, "upper", "--x", "1", "--s", "-3")
	require.NoError(t, err, "NaN is a value, not a failure")
	assert.Equal(t, "NaN", strings.TrimSpace(out))
	assert.Contains(t, logs, "outside the domain")
}

func TestEval_VerboseLogsDiagnostics(t *testing.T) {
	_, logs, err := run(t, "--verbose", "lower", "--x", "10", "--s", "3")
	require.NoError(t, err)
	assert.Contains(t, logs, "evaluated")
	assert.Contains(t, logs, "continued-fraction")
}

func TestEval_RequiresX(t *testing.T) {
	_, _, err := run(t, "lower", "--s", "1")
	assert.Error(t, err)
}

func TestTable_ScalarShape(t *testing.T) {
	path := writeJob(t, "shape: 1\nx: [0, 1, 2]\n")
	out, _, err := run(t, "table", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "0\t1\t0", lines[0])
	fields := strings.Split(lines[2], "\t")
	require.Len(t, fields, 3)
	assert.InDelta(t, 0.8647, parseValue(t, fields[2]), 1e-4)
}

func TestTable_ShapeListUpperParallel(t *testing.T) {
	path := writeJob(t, `
branch: upper
regularized: false
shape: [1, 2, 3, -1]
x: [2, 2, 10, 1]
workers: 2
`)
	out, logs, err := run(t, "table", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	v := parseValue(t, strings.Split(lines[2], "\t")[2])
	assert.Equal(t, gammainc.Upper(10, 3, false), v)
	assert.True(t, strings.HasSuffix(lines[3], "NaN"))
	assert.Contains(t, logs, "elements outside the domain")
}

func TestTable_Errors(t *testing.T) {
	cases := map[string]struct {
		body string
		want error
	}{
		"length mismatch": {"shape: [1, 2]\nx: [1, 2, 3]\n", elementwise.ErrLengthMismatch},
		"unknown branch":  {"branch: middle\nshape: 1\nx: [1]\n", errUnknownBranch},
		"missing shape":   {"x: [1]\n", errNoShape},
		"bad workers":     {"shape: 1\nx: [1]\nworkers: -2\n", errBadWorkers},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			out, _, err := run(t, "table", writeJob(t, tc.body))
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, out, "nothing printed on structural errors")
		})
	}
}

func TestTable_BadYAML(t *testing.T) {
	_, _, err := run(t, "table", writeJob(t, "shape: {a: 1}\nx: [1]\n"))
	assert.Error(t, err)

	_, _, err = run(t, "table", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
