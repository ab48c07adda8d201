package commands

import (
	"github.com/spf13/cobra"

	"github.com/CloserlookAI/file-upload-tool/internal/cli/handlers"
)

// Delete returns the command for deleting one object by key.
func Delete(p Profile) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>",
		Short: "Delete a file from the bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Delete(cmd.Context(), p.LoadConfig, args[0])
		},
	}
}
