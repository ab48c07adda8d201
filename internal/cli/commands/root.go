// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated
// to handler functions in the handlers package.
//
// The same command set serves both binaries; a Profile captures the
// per-backend differences (flag vocabulary, ACL default, config loader).
package commands

import (
	"github.com/spf13/cobra"

	"github.com/CloserlookAI/file-upload-tool/internal/cli/handlers"
	"github.com/CloserlookAI/file-upload-tool/internal/config"
)

// Profile describes how one backend surfaces in the CLI.
type Profile struct {
	Use   string
	Short string

	// KeyFlag is the name of the explicit destination-key flag:
	// s3-path for Amazon S3, space-path for Spaces.
	KeyFlag string

	// DefaultPublic selects the upload ACL default and which toggle is
	// exposed: --public when uploads default to private, --private when
	// they default to public-read.
	DefaultPublic bool

	// LoadConfig reads the backend configuration from the environment.
	LoadConfig handlers.ConfigLoader
}

// S3 is the CLI profile for Amazon S3.
var S3 = Profile{
	Use:           "s3upload",
	Short:         "Upload files to Amazon S3",
	KeyFlag:       "s3-path",
	DefaultPublic: false,
	LoadConfig:    config.LoadS3,
}

// Spaces is the CLI profile for DigitalOcean Spaces.
var Spaces = Profile{
	Use:           "spacesupload",
	Short:         "Upload files to DigitalOcean Spaces",
	KeyFlag:       "space-path",
	DefaultPublic: true,
	LoadConfig:    config.LoadSpaces,
}

// Root returns the root command for the given backend profile.
func Root(p Profile) *cobra.Command {
	cmd := &cobra.Command{
		Use:           p.Use,
		Short:         p.Short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(Upload(p))
	cmd.AddCommand(UploadURL(p))
	cmd.AddCommand(List(p))
	cmd.AddCommand(Delete(p))
	cmd.AddCommand(Version(p))
	cmd.AddCommand(Completion(p))

	return cmd
}

// aclFlag registers the visibility toggle for an upload command and
// returns a getter for the effective public setting.
func aclFlag(cmd *cobra.Command, p Profile) func() bool {
	if p.DefaultPublic {
		private := cmd.Flags().Bool("private", false, "Store the object privately (default is public-read)")
		return func() bool { return !*private }
	}
	public := cmd.Flags().Bool("public", false, "Make the object publicly readable (default is private)")
	return func() bool { return *public }
}
