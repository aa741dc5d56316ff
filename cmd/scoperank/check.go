package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackb/scoperank/pkg/progress"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check PATTERN...",
		Short: "Verify the expectations of scenario files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := opts.loadScenarios(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var failed int
			for i, s := range scenarios {
				e, err := opts.newEvaluator(s)
				if err != nil {
					return err
				}
				mismatches, err := e.Check(cmd.Context())
				if err != nil {
					return fmt.Errorf("%s: %w", s.Filename, err)
				}
				for _, m := range mismatches {
					fmt.Fprintf(out, "%s: %v\n", s.Filename, m)
				}
				failed += len(mismatches)
				progress.Files(opts.progress, "checking", i+1, len(scenarios))
			}

			fmt.Fprintf(out, "checked %d file(s), %d failure(s)\n", len(scenarios), failed)
			if err := opts.printMetrics(out); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d expectation(s) failed", failed)
			}
			return nil
		},
	}
}
