package cli

import (
	"github.com/spf13/cobra"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
	Format string
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate <bindings-file>",
		Short: "Check a bindings file against the demo vocabulary",
		Long: `Load a bindings file, check it against the bindings schema and resolve
every action, context, key, button and modifier name.

Exit codes:
  0 - Every binding resolved
  1 - Some bindings or contexts were dropped
  2 - The file could not be read or parsed`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "", "bindings format (yaml|toml|lua); default from extension")

	return cmd
}

func runValidate(opts *ValidateOptions, path string, cmd *cobra.Command) error {
	res, err := loadBindings(path, opts.Format, opts.logger(cmd))
	if err != nil {
		return err
	}

	total := 0
	for _, c := range res.Contexts {
		total += len(c.Bindings)
	}
	printf(cmd, "%s (%s): %d contexts, %d bindings\n", res.Source, res.Format, len(res.Contexts), total)
	for _, c := range res.Contexts {
		printf(cmd, "  %v\n", c.ID)
		for _, b := range c.Bindings {
			printf(cmd, "    %s\n", b)
		}
	}

	if len(res.Diagnostics) == 0 {
		return nil
	}
	for _, d := range res.Diagnostics {
		printf(cmd, "dropped: %s\n", d)
	}
	return NewExitError(ExitFailure, "bindings file has dropped entries")
}
