package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRankCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rank PATTERN...",
		Short: "Show the tower levels and the winning candidate of each call",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := opts.loadScenarios(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range scenarios {
				e, err := opts.newEvaluator(s)
				if err != nil {
					return err
				}
				for _, call := range s.Calls {
					buckets, err := e.Buckets(call)
					if err != nil {
						return fmt.Errorf("%s: %w", s.Filename, err)
					}
					fmt.Fprintf(out, "--- %s: %s ---\n", s.Filename, call.Name)
					fmt.Fprint(out, buckets)

					result, err := e.Resolve(cmd.Context(), call)
					if err != nil {
						fmt.Fprintf(out, "=> error: %v\n", err)
						continue
					}
					fmt.Fprintf(out, "=> %s at %v (%d level(s) visited)\n", result.Candidate.Origin, result.Bucket.Key, result.Walked)
				}
			}
			return opts.printMetrics(out)
		},
	}
}
