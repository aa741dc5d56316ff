package main

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/davecgh/go-spew/spew"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/stackb/scoperank/pkg/progress"
	"github.com/stackb/scoperank/pkg/scenario"
)

// expandPatterns expands doublestar patterns into a sorted, deduplicated
// list of filenames.  A pattern without matches is kept as is, so that
// loading it reports the missing file.
func expandPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var filenames []string
	for _, pattern := range patterns {
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("invalid pattern: %q", pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			matches = []string{pattern}
		}
		for _, name := range matches {
			if seen[name] {
				continue
			}
			seen[name] = true
			filenames = append(filenames, name)
		}
	}
	sort.Strings(filenames)
	return filenames, nil
}

// loadScenarios loads every file matched by the patterns.
func (o *options) loadScenarios(cmd *cobra.Command, patterns []string) ([]*scenario.Scenario, error) {
	filenames, err := expandPatterns(patterns)
	if err != nil {
		return nil, err
	}

	scenarios := make([]*scenario.Scenario, 0, len(filenames))
	for i, filename := range filenames {
		s, err := scenario.Load(filename)
		if err != nil {
			return nil, err
		}
		o.logger.Debug().
			Str("file", filename).
			Int("declarations", len(s.Declarations)).
			Int("calls", len(s.Calls)).
			Msg("loaded scenario")
		if o.dump {
			spew.Fdump(cmd.OutOrStdout(), s)
		}
		progress.Files(o.progress, "loading", i+1, len(filenames))
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func (o *options) newEvaluator(s *scenario.Scenario) (*scenario.Evaluator, error) {
	e, err := scenario.NewEvaluator(s,
		scenario.WithLogger(o.logger.With().Str("file", s.Filename).Logger()),
		scenario.WithInterner(o.interner),
		scenario.WithMetrics(o.metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Filename, err)
	}
	progress.Messagef(o.progress, "evaluate", "evaluating %s", filepath.Base(s.Filename))
	return e, nil
}

// printMetrics writes the gathered metrics in the prometheus text format.
func (o *options) printMetrics(w io.Writer) error {
	if !o.showMetrics {
		return nil
	}
	families, err := o.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encoding metrics: %w", err)
		}
	}
	return nil
}
