package handlers

import (
	"context"
	"log"
)

// Delete removes one object by key. Deleting a key that does not exist
// is reported as success, matching the backend's idempotent delete.
func Delete(ctx context.Context, load ConfigLoader, key string) error {
	cfg, client, err := connect(load)
	if err != nil {
		return err
	}

	log.Printf("Deleting %s from %s bucket %s", key, cfg.Backend, cfg.Bucket)

	if err := client.DeleteFile(ctx, key); err != nil {
		return err
	}

	printDeleted(cfg.Backend, key)
	return nil
}
