package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/tabcheck/internal/provider"
	"github.com/roach88/tabcheck/internal/suite"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <suite-file> <source>",
		Short: "Run the availability check for a single source",
		Long: `Run only the checks that target one named source of a suite.

If the suite declares no check for the source, the default non-empty
contract is applied.

Exit codes:
  0 - Check passed
  1 - Check failed or the provider errored
  2 - Command error (invalid suite file, unknown source, etc.)

Examples:
  tabcheck check ./suites/matchday.yaml points
  tabcheck check ./suites/matchday.yaml forecast --format json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, path, sourceName string, cmd *cobra.Command) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	s, err := suite.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("failed to load suite %s", path), err)
	}

	src, ok := s.SourceByName(sourceName)
	if !ok {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("suite %q has no source %q", s.Name, sourceName))
	}

	// Narrow the suite to the requested source, keeping any tightened
	// expectations declared for it.
	checks := []suite.Check{}
	for _, c := range s.Checks {
		if c.Source == sourceName {
			checks = append(checks, c)
		}
	}
	if len(checks) == 0 {
		checks = []suite.Check{{Source: sourceName}}
	}

	single := &suite.Suite{
		Name:        s.Name,
		Description: s.Description,
		Sources:     []provider.Source{src},
		Checks:      checks,
	}

	runner := suite.NewRunner(suite.WithLogger(commandLogger(opts, cmd)))
	report, err := runner.Run(cmd.Context(), single)
	if err != nil {
		return WrapExitError(ExitCommandError, "check failed to run", err)
	}

	if opts.Format == "json" {
		if err := out.JSON(report); err != nil {
			return err
		}
	} else {
		printReport(out, report)
	}

	if !report.Pass() {
		return NewExitError(ExitFailure, fmt.Sprintf("source %q did not pass", sourceName))
	}

	return nil
}
