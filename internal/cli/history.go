package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/tabcheck/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	DBPath string
	Limit  int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show recorded suite runs",
		Long: `List recorded runs from a history database, or show one run in detail.

Without arguments, lists runs most recent first. With a run ID, shows
the run's per-check outcomes in execution order.

Exit codes:
  0 - History read successfully
  2 - Command error (missing database, unknown run ID)

Examples:
  tabcheck history --db ./history.db
  tabcheck history --db ./history.db --limit 10
  tabcheck history 0198c6b2-... --db ./history.db`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := ""
			if len(args) == 1 {
				runID = args[0]
			}
			return runHistory(opts, runID, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "history database path (required)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum runs to list (0 for all)")

	return cmd
}

func runHistory(opts *HistoryOptions, runID string, cmd *cobra.Command) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	if opts.DBPath == "" {
		return NewExitError(ExitCommandError, "--db is required")
	}

	st, err := store.Open(opts.DBPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open history database", err)
	}
	defer st.Close()

	if runID != "" {
		return showRun(opts, out, st, runID, cmd)
	}
	return listRuns(opts, out, st, cmd)
}

func listRuns(opts *HistoryOptions, out *OutputFormatter, st *store.Store, cmd *cobra.Command) error {
	runs, err := st.ListRuns(cmd.Context(), opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}

	if opts.Format == "json" {
		return out.JSON(runs)
	}

	if len(runs) == 0 {
		out.Textf("No recorded runs.")
		return nil
	}
	for _, r := range runs {
		out.Textf("%s  %s  %s  %d passed, %d failed, %d errored",
			r.StartedAt, r.ID, r.Suite, r.Passed, r.Failed, r.Errored)
	}
	return nil
}

func showRun(opts *HistoryOptions, out *OutputFormatter, st *store.Store, runID string, cmd *cobra.Command) error {
	run, outcomes, err := st.ReadRun(cmd.Context(), runID)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("failed to read run %s", runID), err)
	}

	if opts.Format == "json" {
		return out.JSON(map[string]any{"run": run, "outcomes": outcomes})
	}

	out.Textf("run %s (suite %s, started %s)", run.ID, run.Suite, run.StartedAt)
	for _, rec := range outcomes {
		switch {
		case rec.Pass:
			out.Textf("  ✓ %s (%d rows)", rec.Source, rec.RowCount)
		case rec.Error != "":
			out.Textf("  ✗ %s: provider failed: %s", rec.Source, rec.Error)
		default:
			out.Textf("  ✗ %s: %s", rec.Source, rec.Reason)
		}
	}
	return nil
}
