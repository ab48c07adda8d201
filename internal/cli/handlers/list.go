package handlers

import (
	"context"
)

// ListOptions carries the arguments for a bucket listing.
type ListOptions struct {
	// Prefix filters the listing to keys starting with it. Empty means
	// the configured key prefix.
	Prefix string
	// Max caps the number of entries returned.
	Max int32
}

// List prints up to opts.Max objects in the bucket.
func List(ctx context.Context, load ConfigLoader, opts ListOptions) error {
	_, client, err := connect(load)
	if err != nil {
		return err
	}

	entries, err := client.ListFiles(ctx, opts.Prefix, opts.Max)
	if err != nil {
		return err
	}

	printListing(entries)
	return nil
}
