// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

// app carries the per-invocation writers and logger.
type app struct {
	stdout  io.Writer
	stderr  io.Writer
	verbose bool
	log     *slog.Logger
}

// newLogger builds the tint handler used by every command.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}))
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "gammainc",
		Short:         "Evaluate the lower and upper incomplete gamma functions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.log = newLogger(a.stderr, a.verbose)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		a.newEvalCmd("lower", "Lower incomplete gamma P(s,x) or γ(s,x)"),
		a.newEvalCmd("upper", "Upper incomplete gamma Q(s,x) or Γ(s,x)"),
		a.newTableCmd(),
	)

	return root
}
