package store

import "time"

// UploadResult describes a completed upload. It is returned once per
// upload call and never persisted; the object store itself is the
// system of record.
type UploadResult struct {
	Bucket      string
	Key         string
	URL         string
	Filename    string
	SizeBytes   int64
	ContentType string
	UploadedAt  time.Time

	// SourceURL is set when the object was uploaded from a remote URL.
	SourceURL string
}

// ListEntry describes one object returned by a listing call.
type ListEntry struct {
	Key          string
	SizeBytes    int64
	LastModified time.Time
	URL          string
}
