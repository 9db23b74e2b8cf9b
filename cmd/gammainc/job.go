// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/specfun/elementwise"
	"github.com/katalvlaran/specfun/gammainc"
)

var (
	errUnknownBranch = errors.New("job: unknown branch")
	errNoShape       = errors.New("job: shape is required")
	errBadWorkers    = errors.New("job: workers must be >= 0")
)

// shape is either one number or a list, as written in the job file.
type shape struct {
	scalar *float64
	list   []float64
}

// UnmarshalYAML accepts a scalar node or a sequence of numbers.
func (s *shape) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("job: shape: %w", err)
		}
		s.scalar = &v
		return nil
	case yaml.SequenceNode:
		var vs []float64
		if err := node.Decode(&vs); err != nil {
			return fmt.Errorf("job: shape: %w", err)
		}
		s.list = vs
		return nil
	default:
		return fmt.Errorf("job: shape: line %d: want a number or a list", node.Line)
	}
}

// job is a batch evaluation request.
type job struct {
	Branch      string    `yaml:"branch"`
	Regularized *bool     `yaml:"regularized"`
	Shape       shape     `yaml:"shape"`
	X           []float64 `yaml:"x"`
	Workers     int       `yaml:"workers"`
}

// loadJob reads and decodes a job file.
func loadJob(path string) (*job, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var j job
	if err = yaml.Unmarshal(raw, &j); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &j, nil
}

// branch resolves the branch name, lower by default.
func (j *job) branch() (gammainc.Branch, error) {
	if j.Branch == "" {
		return gammainc.BranchLower, nil
	}
	b, ok := gammainc.ParseBranch(j.Branch)
	if !ok {
		return 0, fmt.Errorf("%w: %q", errUnknownBranch, j.Branch)
	}

	return b, nil
}

// param builds the elementwise shape argument.
func (j *job) param() (elementwise.Param[float64], error) {
	switch {
	case j.Shape.scalar != nil:
		return elementwise.Scalar[float64](*j.Shape.scalar), nil
	case j.Shape.list != nil:
		return elementwise.Array[float64](j.Shape.list), nil
	default:
		return elementwise.Param[float64]{}, errNoShape
	}
}

// options translates the job into elementwise options.
func (j *job) options() ([]elementwise.Option, error) {
	b, err := j.branch()
	if err != nil {
		return nil, err
	}
	opts := []elementwise.Option{elementwise.WithBranch(b)}
	if j.Regularized != nil {
		opts = append(opts, elementwise.WithRegularized(*j.Regularized))
	}
	switch {
	case j.Workers < 0:
		return nil, errBadWorkers
	case j.Workers > 0:
		opts = append(opts, elementwise.WithWorkers(j.Workers))
	}

	return opts, nil
}

// shapeAt returns the shape used for element i, for printing.
func (j *job) shapeAt(i int) float64 {
	if j.Shape.scalar != nil {
		return *j.Shape.scalar
	}

	return j.Shape.list[i]
}
