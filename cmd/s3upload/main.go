// Package main is the entry point for the s3upload CLI.
//
// s3upload uploads local files or remote URLs to an Amazon S3 bucket,
// lists bucket contents, and deletes objects. Credentials and the
// target bucket come from the environment (or a .env file).
//
// Commands: upload, upload-url, list, delete.
//
// For detailed usage information, run:
//
//	s3upload --help
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
	if err := commands.Root(commands.S3).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(1)
	}
}
