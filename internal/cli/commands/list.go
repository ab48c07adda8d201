package commands

import (
	"github.com/spf13/cobra"

	"github.com/CloserlookAI/file-upload-tool/internal/cli/handlers"
)

// List returns the command for listing bucket contents.
func List(p Profile) *cobra.Command {
	var (
		prefix string
		max    int32
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List files in the bucket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.List(cmd.Context(), p.LoadConfig, handlers.ListOptions{
				Prefix: prefix,
				Max:    max,
			})
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "Only list keys starting with this prefix")
	cmd.Flags().Int32Var(&max, "max", 100, "Maximum number of files to list")

	return cmd
}
