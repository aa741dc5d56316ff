package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/stackb/scoperank/pkg/tower"
)

func newKeyCmd(opts *options) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "key PATH...",
		Short: "Sort tower key paths from the most preferred to the least",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := make([]tower.Key, 0, len(args))
			for _, arg := range args {
				key, err := opts.interner.Intern(arg)
				if err != nil {
					return fmt.Errorf("%q: %w", arg, err)
				}
				keys = append(keys, key)
			}
			sort.SliceStable(keys, func(i, j int) bool {
				return keys[i].Less(keys[j])
			})

			out := cmd.OutOrStdout()
			for _, key := range keys {
				if raw {
					fmt.Fprintf(out, "%#v\n", key)
				} else {
					fmt.Fprintln(out, key)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the encoded form of each key")
	return cmd
}
