// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/specfun/elementwise"
	"github.com/spf13/cobra"
)

// newTableCmd builds "table FILE": batch evaluation of a YAML job.
func (a *app) newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table FILE",
		Short: "Evaluate a YAML job file element by element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := loadJob(args[0])
			if err != nil {
				return err
			}
			param, err := j.param()
			if err != nil {
				return err
			}
			opts, err := j.options()
			if err != nil {
				return err
			}

			out := make([]float64, len(j.X))
			_, err = elementwise.ComputeIntoParallel(cmd.Context(), out, j.X, param,
				elementwise.Identity[float64], opts...)
			if err != nil {
				return err
			}

			nan := 0
			w := bufio.NewWriter(a.stdout)
			for i, v := range out {
				if math.IsNaN(v) {
					nan++
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", fmtFloat(j.X[i]), fmtFloat(j.shapeAt(i)), fmtFloat(v))
			}
			if err = w.Flush(); err != nil {
				return err
			}

			a.log.Debug("table done", "file", args[0], "elements", len(out), "param", param.Kind())
			if nan > 0 {
				a.log.Warn("elements outside the domain", "count", nan)
			}
			return nil
		},
	}
}

// fmtFloat prints the shortest representation that round-trips.
func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
