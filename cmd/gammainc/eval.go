// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/katalvlaran/specfun/gammainc"
	"github.com/spf13/cobra"
)

// newEvalCmd builds the "lower" / "upper" scalar commands.
func (a *app) newEvalCmd(name, short string) *cobra.Command {
	var x, s float64
	var raw bool
	branch, _ := gammainc.ParseBranch(name)

	cmd := &cobra.Command{
		Use:   name + " --x X --s S",
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := gammainc.Evaluate(branch, x, s, gammainc.WithRegularized(!raw))
			a.log.Debug("evaluated",
				"branch", res.Branch,
				"x", x,
				"s", s,
				"regularized", res.Regularized,
				"algorithm", res.Algorithm,
				"complement", res.Complement,
				"iterations", res.Iterations,
			)
			if res.Capped {
				a.log.Warn("continued fraction hit the iteration cap", "max", gammainc.MaxIterations)
			}
			if math.IsNaN(res.Value) {
				a.log.Warn("outside the domain x >= 0, s > 0", "x", x, "s", s)
			}
			_, err := fmt.Fprintf(a.stdout, "%.17g\n", res.Value)
			return err
		},
	}
	cmd.Flags().Float64Var(&x, "x", 0, "integration bound (x >= 0)")
	cmd.Flags().Float64Var(&s, "s", 1, "shape parameter (s > 0)")
	cmd.Flags().BoolVar(&raw, "raw", false, "non-regularized form (γ or Γ instead of P or Q)")
	_ = cmd.MarkFlagRequired("x")

	return cmd
}
