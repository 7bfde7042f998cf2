package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/tabcheck/internal/suite"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <suite-file>",
		Short: "Validate a suite file without running it",
		Long: `Validate a suite file against the schema and consistency rules.

No provider is invoked; this only checks that the file parses, matches
the suite schema, and references sources consistently.

Exit codes:
  0 - Suite is valid
  2 - Suite is invalid or unreadable

Examples:
  tabcheck validate ./suites/matchday.yaml
  tabcheck validate ./suites/matchday.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	s, err := suite.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("suite %s is invalid", path), err)
	}

	if opts.Format == "json" {
		return out.JSON(map[string]any{
			"suite":   s.Name,
			"sources": len(s.Sources),
			"checks":  len(s.Checks),
		})
	}

	out.Textf("✓ %s: %d sources, %d checks", s.Name, len(s.Sources), len(s.Checks))
	return nil
}
