package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CloserlookAI/file-upload-tool/internal/cli/handlers"
)

// UploadURL returns the command for uploading a remote resource.
func UploadURL(p Profile) *cobra.Command {
	var (
		filename string
		destKey  string
	)

	cmd := &cobra.Command{
		Use:   "upload-url <url>",
		Short: "Download a URL and upload it",
		Long: fmt.Sprintf(`Download a remote resource and upload it to the configured bucket.

The filename is taken from the URL path unless --filename is given.

Examples:
  %s upload-url https://example.com/image.png

  %s upload-url https://example.com/data --filename data.csv`,
			p.Use, p.Use),
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().StringVar(&filename, "filename", "", "Override the filename derived from the URL")
	cmd.Flags().StringVar(&destKey, p.KeyFlag, "", "Explicit destination key")
	public := aclFlag(cmd, p)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return handlers.UploadURL(cmd.Context(), p.LoadConfig, handlers.UploadURLOptions{
			URL:      args[0],
			Filename: filename,
			DestKey:  destKey,
			Public:   public(),
		})
	}

	return cmd
}
