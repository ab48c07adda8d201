package store

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// Sentinel errors for the failure classes surfaced by the client.
// Callers match them with errors.Is.
var (
	// ErrNotFound indicates the local source file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrFetch indicates a remote source could not be downloaded.
	ErrFetch = errors.New("fetch failed")

	// ErrAuth indicates the backend rejected the configured credentials.
	ErrAuth = errors.New("authentication rejected")

	// ErrRemote indicates any other backend-side failure.
	ErrRemote = errors.New("backend request failed")
)

// OpError wraps a backend failure with the operation, bucket, and key it
// occurred on. It carries one of the sentinel errors above as its kind so
// errors.Is keeps working through the wrap.
type OpError struct {
	Op     string
	Bucket string
	Key    string
	Kind   error
	Err    error
}

func (e *OpError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Bucket, e.Err)
}

func (e *OpError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// wrapAPIError classifies a backend error as ErrAuth or ErrRemote and
// attaches operation context.
func (c *Client) wrapAPIError(op, key string, err error) error {
	kind := ErrRemote
	if isAuthError(err) {
		kind = ErrAuth
	}
	return &OpError{Op: op, Bucket: c.cfg.Bucket, Key: key, Kind: kind, Err: err}
}

// isAuthError reports whether the backend rejected our credentials.
// S3-compatible services are not consistent about error types, so this
// falls back to API error code matching like the SDK documentation
// recommends.
func isAuthError(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch",
		"ExpiredToken", "InvalidToken", "403":
		return true
	}
	return false
}
