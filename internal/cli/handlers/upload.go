package handlers

import (
	"context"
	"log"
)

// UploadOptions carries the arguments for a local file upload.
type UploadOptions struct {
	// Path is the local file to upload.
	Path string
	// DestKey is an explicit destination key. When empty the key is
	// derived from the filename plus the configured prefix.
	DestKey string
	// Public stores the object with a public-read ACL.
	Public bool
}

// Upload uploads a local file and prints the result.
func Upload(ctx context.Context, load ConfigLoader, opts UploadOptions) error {
	cfg, client, err := connect(load)
	if err != nil {
		return err
	}

	log.Printf("Uploading %s to %s bucket %s", opts.Path, cfg.Backend, cfg.Bucket)

	res, err := client.UploadFile(ctx, opts.Path, opts.DestKey, opts.Public)
	if err != nil {
		return err
	}

	printUploadResult(cfg.Backend, res)
	return nil
}
