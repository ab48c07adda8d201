// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"context"

	"github.com/CloserlookAI/file-upload-tool/internal/store"
)

// objectStore is the subset of store.Client used by the handlers.
// It exists so tests can substitute a fake client.
type objectStore interface {
	UploadFile(ctx context.Context, localPath, destKey string, public bool) (*store.UploadResult, error)
	UploadFromURL(ctx context.Context, srcURL, filename, destKey string, public bool) (*store.UploadResult, error)
	ListFiles(ctx context.Context, prefix string, maxKeys int32) ([]store.ListEntry, error)
	DeleteFile(ctx context.Context, key string) error
}

// newClient creates the store client - can be replaced in tests for
// dependency injection.
var newClient = func(cfg store.Config) (objectStore, error) {
	return store.New(cfg)
}

// ConfigLoader builds the backend configuration, typically from the
// environment. It runs before any network call so configuration errors
// surface first.
type ConfigLoader func() (store.Config, error)

// connect loads configuration and constructs a client from it.
func connect(load ConfigLoader) (store.Config, objectStore, error) {
	cfg, err := load()
	if err != nil {
		return store.Config{}, nil, err
	}
	client, err := newClient(cfg)
	if err != nil {
		return store.Config{}, nil, err
	}
	return cfg, client, nil
}
