// The aoc2023 command runs the Advent of Code 2023 solutions against the
// inputs in input/<day>.txt and writes reports to output/<day>.txt.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/days"
)

func main() {
	if err := execute(newRootCmd(os.Environ)); err != nil {
		os.Exit(1)
	}
}

// execute runs cmd and logs any error it returns at error level on the
// command's error stream.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		newLogger(cmd.ErrOrStderr(), log.InfoLevel).Error("setup failed", "err", err)
	}
	return err
}

func newRootCmd(environ func() []string) *cobra.Command {
	var (
		dayNums    []int
		part       int
		sampleOnly bool
		skipSample bool
	)
	cmd := &cobra.Command{
		Use:           "aoc2023",
		Short:         "Run Advent of Code 2023 solutions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), environ)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.Level)
			return runDays(cmd, logger, cfg, dayNums, part, sampleOnly, skipSample)
		},
	}

	f := cmd.Flags()
	f.IntSliceVarP(&dayNums, "day", "d", nil, "days to run (default all)")
	f.IntVarP(&part, "part", "p", 0, "only run this part (1 or 2)")
	f.BoolVar(&sampleOnly, "sample", false, "only check samples")
	f.BoolVar(&skipSample, "skip-sample", false, "skip sample checks")
	f.String("dir", "", "directory holding input/ and output/ (env AOC_BASE_DIR, default working directory)")
	f.String("log-level", "info", "log level: debug, info, warn, error (env AOC_LOG_LEVEL)")
	f.Int("runs", 1, "run each part this many times and report the fastest (env AOC_RUNS)")
	f.Bool("no-banner", false, "do not print the banner (env AOC_NO_BANNER)")
	return cmd
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}

// runDays executes the selected days. It returns an error only for problems
// found before any day runs; failures inside a day are logged as warnings.
func runDays(cmd *cobra.Command, logger *log.Logger, cfg config, dayNums []int, part int, sampleOnly, skipSample bool) error {
	if part != 0 && part != 1 && part != 2 {
		return errors.New("--part must be 1 or 2")
	}
	mode := aoc.SampleRun
	switch {
	case sampleOnly && skipSample:
		return errors.New("--sample and --skip-sample are mutually exclusive")
	case sampleOnly:
		mode = aoc.SampleOnly
	case skipSample:
		mode = aoc.SampleSkip
	}

	reg := aoc.NewRegistry()
	if err := days.Register(reg); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !cfg.NoBanner {
		printBanner(out)
	}
	logger.Debug("starting", "base_dir", cfg.BaseDir, "days", dayNums, "runs", cfg.Runs)
	h := &aoc.Harness{
		Fs:      afero.NewBasePathFs(afero.NewOsFs(), cfg.BaseDir),
		Out:     out,
		Log:     logger,
		Samples: mode,
		Part:    part,
		Runs:    cfg.Runs,
	}
	reports, err := h.Run(reg, dayNums...)
	if err != nil {
		return err
	}
	if err := aoc.Err(reports); err != nil {
		logger.Warn("finished with failures", "err", err)
	}
	return nil
}
