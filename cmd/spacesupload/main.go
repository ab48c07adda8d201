// Package main is the entry point for the spacesupload CLI.
//
// spacesupload uploads local files or remote URLs to a DigitalOcean
// Space, lists its contents, and deletes objects. Uploads default to
// public-read; returned URLs use the configured CDN host when one is
// set.
//
// Commands: upload, upload-url, list, delete.
//
// For detailed usage information, run:
//
//	spacesupload --help
package main

import (
	"fmt"
	"os"

	"github.com/CloserlookAI/file-upload-tool/internal/cli/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root(commands.Spaces).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(1)
	}
}
