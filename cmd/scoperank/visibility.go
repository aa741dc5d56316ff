package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stackb/scoperank/pkg/visibility"
)

func newVisibilityCmd(opts *options) *cobra.Command {
	var platform string
	var showHierarchy bool

	cmd := &cobra.Command{
		Use:   "visibility PATTERN...",
		Short: "Compute the effective visibility of each declaration",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var converter *visibility.Converter
			switch platform {
			case "":
				converter = visibility.NewConverter(nil)
			case "java":
				converter = visibility.NewConverter(visibility.JavaPlatformConverter)
			default:
				return fmt.Errorf("unknown platform: %q", platform)
			}

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
				if showHierarchy {
					h := e.Hierarchy()
					for _, name := range h.Types() {
						line := name
						if supers := h.Supertypes(name); len(supers) > 0 {
							line += " <: " + strings.Join(supers, ", ")
						}
						fmt.Fprintf(out, "%s: %s\n", s.Filename, line)
					}
				}
				for _, d := range s.Declarations {
					eff, err := e.EffectiveVisibility(d)
					if err != nil {
						return fmt.Errorf("%s: declaration %q: %w", s.Filename, d.Name, err)
					}
					surface := visibility.ToSurface(eff)
					descriptor, err := converter.Convert(surface)
					if err != nil {
						return fmt.Errorf("%s: declaration %q: %w", s.Filename, d.Name, err)
					}
					fmt.Fprintf(out, "%s: %s: %v (surface %v, descriptor %s)\n", s.Filename, d.Name, eff, surface, descriptor)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showHierarchy, "hierarchy", false, "print the transitive supertypes of each type first")
	cmd.Flags().StringVar(&platform, "platform", "", "platform converter for platform visibilities (java)")
	return cmd
}
