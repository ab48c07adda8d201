package store

import (
	"errors"
	"strings"
)

// Backend identifies which S3-compatible service a Config targets.
type Backend int

const (
	// BackendS3 targets Amazon S3.
	BackendS3 Backend = iota
	// BackendSpaces targets DigitalOcean Spaces.
	BackendSpaces
)

// String returns the human-readable backend name.
func (b Backend) String() string {
	switch b {
	case BackendSpaces:
		return "DigitalOcean Spaces"
	default:
		return "Amazon S3"
	}
}

// Config holds everything needed to construct a Client. It is built once
// (typically from the environment) and passed in explicitly; the client
// never reads ambient process state.
type Config struct {
	Backend   Backend
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string

	// Endpoint is the S3-compatible endpoint host, e.g.
	// "nyc3.digitaloceanspaces.com". Empty for Amazon S3, where the
	// SDK derives the endpoint from the region.
	Endpoint string

	// CDNBaseURL, when set, replaces the storage endpoint host in all
	// returned object URLs, e.g. "https://assets.example.com".
	CDNBaseURL string

	// KeyPrefix is an optional folder prefix applied to generated keys
	// and used as the default listing prefix.
	KeyPrefix string
}

// Validate checks that the fields required to reach the backend are set.
func (c Config) Validate() error {
	if c.AccessKey == "" || c.SecretKey == "" {
		return errors.New("access key and secret key are required")
	}
	if c.Bucket == "" {
		return errors.New("bucket name is required")
	}
	if c.Backend == BackendSpaces && c.Endpoint == "" {
		return errors.New("endpoint is required for DigitalOcean Spaces")
	}
	return nil
}

// endpointURL returns the full endpoint URL for the SDK, or "" when the
// default AWS endpoint resolution should be used.
func (c Config) endpointURL() string {
	if c.Endpoint == "" {
		return ""
	}
	if strings.HasPrefix(c.Endpoint, "http://") || strings.HasPrefix(c.Endpoint, "https://") {
		return c.Endpoint
	}
	return "https://" + c.Endpoint
}

// endpointHost returns the endpoint without any scheme prefix, for use in
// virtual-hosted-style object URLs.
func (c Config) endpointHost() string {
	host := strings.TrimPrefix(c.Endpoint, "https://")
	host = strings.TrimPrefix(host, "http://")
	return strings.TrimSuffix(host, "/")
}
