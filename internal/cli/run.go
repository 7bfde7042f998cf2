package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/tabcheck/internal/store"
	"github.com/roach88/tabcheck/internal/suite"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	DBPath string // record run history when set
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <suite-file>",
		Short: "Run all availability checks in a suite",
		Long: `Run every check in a suite, sequentially, and report outcomes.

Each check invokes its source once. A source that fails outright is
reported as errored; a source that returns too little data is reported
as failed. Neither aborts the remaining checks.

Exit codes:
  0 - All checks passed
  1 - One or more checks failed or errored
  2 - Command error (invalid suite file, etc.)

Examples:
  tabcheck run ./suites/matchday.yaml
  tabcheck run ./suites/matchday.yaml --db ./history.db
  tabcheck run ./suites/matchday.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuite(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "record the run in a history database")

	return cmd
}

func runSuite(opts *RunOptions, path string, cmd *cobra.Command) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	s, err := suite.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("failed to load suite %s", path), err)
	}

	runnerOpts := []suite.Option{suite.WithLogger(commandLogger(opts.RootOptions, cmd))}

	if opts.DBPath != "" {
		st, err := store.Open(opts.DBPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open history database", err)
		}
		defer st.Close()
		runnerOpts = append(runnerOpts, suite.WithStore(st))
	}

	report, err := suite.NewRunner(runnerOpts...).Run(cmd.Context(), s)
	if err != nil {
		return WrapExitError(ExitCommandError, "suite run failed", err)
	}

	if opts.Format == "json" {
		if err := out.JSON(report); err != nil {
			return err
		}
	} else {
		printReport(out, report)
	}

	if !report.Pass() {
		return NewExitError(ExitFailure,
			fmt.Sprintf("%d of %d checks did not pass", report.Failed+report.Errored, len(report.Checks)))
	}

	return nil
}

// printReport writes the text rendering of a report.
func printReport(out *OutputFormatter, report *suite.Report) {
	for _, cr := range report.Checks {
		switch {
		case cr.Pass:
			out.Textf("✓ %s (%d rows)", cr.Source, cr.RowCount)
		case cr.Error != "":
			out.Textf("✗ %s: provider failed: %s", cr.Source, cr.Error)
		default:
			out.Textf("✗ %s: %s", cr.Source, cr.Reason)
		}
	}
	out.Textf("%d passed, %d failed, %d errored (run %s)",
		report.Passed, report.Failed, report.Errored, report.RunID)
}

// commandLogger returns a slog logger writing to the command's error
// stream in verbose mode, and a discard logger otherwise.
func commandLogger(opts *RootOptions, cmd *cobra.Command) *slog.Logger {
	if opts.Verbose {
		return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
