package cli

import (
	"github.com/spf13/cobra"

	"github.com/dshills/rebind/internal/config/bindings"
	"github.com/dshills/rebind/internal/demo"
)

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "export",
		Short:         "Print the built-in demo bindings as YAML",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := bindings.FromContexts(demo.Contexts())
			if err := bindings.Encode(cmd.OutOrStdout(), doc); err != nil {
				return WrapExitError(ExitCommandError, "export", err)
			}
			return nil
		},
	}
}

// NewSchemaCommand creates the schema command.
func NewSchemaCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "schema",
		Short:         "Print the JSON Schema for bindings files",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(bindings.Schema())
			return err
		},
	}
}
