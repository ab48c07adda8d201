package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CloserlookAI/file-upload-tool/internal/cli/handlers"
)

// Upload returns the command for uploading a local file.
//
// The destination key defaults to the filename, prefixed with the
// configured key prefix when one is set.
func Upload(p Profile) *cobra.Command {
	var destKey string

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a local file",
		Long: fmt.Sprintf(`Upload a local file to the configured bucket.

The object key is derived from the filename, prefixed with the
configured key prefix. Use --%s to set the key explicitly.

Examples:
  # Upload with a derived key
  %s upload report.pdf

  # Upload to an explicit key
  %s upload report.pdf --%s documents/report.pdf`,
			p.KeyFlag, p.Use, p.Use, p.KeyFlag),
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().StringVar(&destKey, p.KeyFlag, "", "Explicit destination key")
	public := aclFlag(cmd, p)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return handlers.Upload(cmd.Context(), p.LoadConfig, handlers.UploadOptions{
			Path:    args[0],
			DestKey: destKey,
			Public:  public(),
		})
	}

	return cmd
}
