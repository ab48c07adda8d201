package handlers

import (
	"context"
	"log"
)

// UploadURLOptions carries the arguments for an upload from a remote URL.
type UploadURLOptions struct {
	// URL is the remote resource to download and upload.
	URL string
	// Filename overrides the name derived from the URL path.
	Filename string
	// DestKey is an explicit destination key.
	DestKey string
	// Public stores the object with a public-read ACL.
	Public bool
}

// UploadURL downloads a remote resource, uploads it, and prints the result.
func UploadURL(ctx context.Context, load ConfigLoader, opts UploadURLOptions) error {
	cfg, client, err := connect(load)
	if err != nil {
		return err
	}

	log.Printf("Downloading %s for upload to %s bucket %s", opts.URL, cfg.Backend, cfg.Bucket)

	res, err := client.UploadFromURL(ctx, opts.URL, opts.Filename, opts.DestKey, opts.Public)
	if err != nil {
		return err
	}

	printUploadResult(cfg.Backend, res)
	return nil
}
