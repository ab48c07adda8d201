// Package config loads object-store configuration from the environment.
//
// Configuration is read once at process start and handed to the store
// client as an explicit struct. A .env file in the working directory is
// honored but never overrides variables already set in the environment.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/CloserlookAI/file-upload-tool/internal/store"
)

// MissingEnvError reports every required environment variable that is
// not set, so the user can fix them all in one pass.
type MissingEnvError struct {
	Missing []string
}

func (e *MissingEnvError) Error() string {
	return "missing required environment variables: " + strings.Join(e.Missing, ", ")
}

// LoadS3 builds the Amazon S3 configuration from the environment.
//
// Required: AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, S3_BUCKET_NAME.
// Optional: AWS_REGION (default us-east-1), S3_PREFIX.
func LoadS3() (store.Config, error) {
	loadDotEnv()

	cfg := store.Config{
		Backend:   store.BackendS3,
		AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		Bucket:    os.Getenv("S3_BUCKET_NAME"),
		Region:    envOr("AWS_REGION", "us-east-1"),
		KeyPrefix: os.Getenv("S3_PREFIX"),
	}

	var missing []string
	if cfg.AccessKey == "" {
		missing = append(missing, "AWS_ACCESS_KEY_ID")
	}
	if cfg.SecretKey == "" {
		missing = append(missing, "AWS_SECRET_ACCESS_KEY")
	}
	if cfg.Bucket == "" {
		missing = append(missing, "S3_BUCKET_NAME")
	}
	if len(missing) > 0 {
		return store.Config{}, &MissingEnvError{Missing: missing}
	}
	return cfg, nil
}

// LoadSpaces builds the DigitalOcean Spaces configuration from the
// environment.
//
// Required: DO_SPACES_KEY, DO_SPACES_SECRET, DO_SPACES_ENDPOINT,
// DO_SPACES_BUCKET.
// Optional: DO_SPACES_REGION (default nyc3), DO_SPACES_FILES_URL,
// DO_SPACES_PREFIX.
func LoadSpaces() (store.Config, error) {
	loadDotEnv()

	cfg := store.Config{
		Backend:    store.BackendSpaces,
		AccessKey:  os.Getenv("DO_SPACES_KEY"),
		SecretKey:  os.Getenv("DO_SPACES_SECRET"),
		Bucket:     os.Getenv("DO_SPACES_BUCKET"),
		Region:     envOr("DO_SPACES_REGION", "nyc3"),
		Endpoint:   os.Getenv("DO_SPACES_ENDPOINT"),
		CDNBaseURL: os.Getenv("DO_SPACES_FILES_URL"),
		KeyPrefix:  os.Getenv("DO_SPACES_PREFIX"),
	}

	var missing []string
	if cfg.AccessKey == "" {
		missing = append(missing, "DO_SPACES_KEY")
	}
	if cfg.SecretKey == "" {
		missing = append(missing, "DO_SPACES_SECRET")
	}
	if cfg.Endpoint == "" {
		missing = append(missing, "DO_SPACES_ENDPOINT")
	}
	if cfg.Bucket == "" {
		missing = append(missing, "DO_SPACES_BUCKET")
	}
	if len(missing) > 0 {
		return store.Config{}, &MissingEnvError{Missing: missing}
	}
	return cfg, nil
}

// loadDotEnv pulls variables from a .env file in the working directory,
// if one exists. godotenv.Load never overrides existing variables.
func loadDotEnv() {
	_ = godotenv.Load()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
