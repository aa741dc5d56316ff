// scoperank ranks name resolution candidates by tower priority and computes
// the effective visibility of declarations described in scenario files.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pcj/mobyprogress"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/stackb/scoperank/pkg/logger"
	"github.com/stackb/scoperank/pkg/procutil"
	"github.com/stackb/scoperank/pkg/progress"
	"github.com/stackb/scoperank/pkg/resolver"
	"github.com/stackb/scoperank/pkg/tower"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// options holds the persistent flags and the state derived from them.
type options struct {
	logLevel     string
	logFormat    string
	output       string
	dump         bool
	showProgress bool
	showMetrics  bool

	logger   zerolog.Logger
	progress mobyprogress.Output
	registry *prometheus.Registry
	metrics  *resolver.Metrics
	interner *tower.Interner
	outFile  *os.File
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "scoperank",
		Short:        "Rank resolution candidates and compute effective visibilities",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = logger.New(cmd.ErrOrStderr(), level, logger.Format(opts.logFormat))
			opts.progress = progress.Discard()
			if opts.showProgress {
				opts.progress = progress.NewProgressOutput(cmd.ErrOrStderr())
			}
			opts.registry = prometheus.NewRegistry()
			opts.metrics = resolver.NewMetrics(opts.registry)
			opts.interner = tower.NewInterner()
			if opts.output != "" {
				f, err := os.Create(opts.output)
				if err != nil {
					return fmt.Errorf("creating output: %w", err)
				}
				opts.outFile = f
				cmd.SetOut(f)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return opts.closeOutput()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log_level", procutil.LookupStringEnv(SCOPERANK_LOG_LEVEL, "warn"), "log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log_format", procutil.LookupStringEnv(SCOPERANK_LOG_FORMAT, string(logger.FormatAuto)), "log format (auto, console, json)")
	flags.StringVarP(&opts.output, "output", "o", "", "write command output to this file instead of stdout")
	flags.BoolVar(&opts.dump, "dump", false, "dump loaded scenarios")
	flags.BoolVar(&opts.showProgress, "progress", procutil.LookupBoolEnv(SCOPERANK_PROGRESS, false), "report progress on stderr")
	flags.BoolVar(&opts.showMetrics, "metrics", false, "print resolver metrics when done")

	root.AddCommand(
		newCheckCmd(opts),
		newRankCmd(opts),
		newVisibilityCmd(opts),
		newKeyCmd(opts),
	)
	return root
}

// closeOutput closes the --output file, if one was opened.
func (o *options) closeOutput() error {
	if o.outFile == nil {
		return nil
	}
	err := o.outFile.Close()
	o.outFile = nil
	return err
}
