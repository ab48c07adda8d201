package handlers

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CloserlookAI/file-upload-tool/internal/store"
)

// fakeStore records calls and returns canned results.
type fakeStore struct {
	uploadRes *store.UploadResult
	entries   []store.ListEntry
	err       error

	gotPath     string
	gotURL      string
	gotFilename string
	gotDestKey  string
	gotPublic   bool
	gotPrefix   string
	gotMax      int32
	gotDelete   string
}

func (f *fakeStore) UploadFile(_ context.Context, localPath, destKey string, public bool) (*store.UploadResult, error) {
	f.gotPath, f.gotDestKey, f.gotPublic = localPath, destKey, public
	return f.uploadRes, f.err
}

func (f *fakeStore) UploadFromURL(_ context.Context, srcURL, filename, destKey string, public bool) (*store.UploadResult, error) {
	f.gotURL, f.gotFilename, f.gotDestKey, f.gotPublic = srcURL, filename, destKey, public
	return f.uploadRes, f.err
}

func (f *fakeStore) ListFiles(_ context.Context, prefix string, maxKeys int32) ([]store.ListEntry, error) {
	f.gotPrefix, f.gotMax = prefix, maxKeys
	return f.entries, f.err
}

func (f *fakeStore) DeleteFile(_ context.Context, key string) error {
	f.gotDelete = key
	return f.err
}

// install replaces the client factory and stdout for one test.
func install(t *testing.T, fake *fakeStore) *bytes.Buffer {
	t.Helper()

	origNew, origOut := newClient, stdout
	buf := &bytes.Buffer{}
	stdout = buf
	newClient = func(_ store.Config) (objectStore, error) { return fake, nil }
	t.Cleanup(func() {
		newClient = origNew
		stdout = origOut
	})
	return buf
}

func s3Loader() (store.Config, error) {
	return store.Config{Backend: store.BackendS3, Bucket: "b", AccessKey: "k", SecretKey: "s", Region: "us-east-1"}, nil
}

func spacesLoader() (store.Config, error) {
	return store.Config{Backend: store.BackendSpaces, Bucket: "b", AccessKey: "k", SecretKey: "s", Region: "nyc3", Endpoint: "nyc3.digitaloceanspaces.com"}, nil
}

func sampleResult() *store.UploadResult {
	return &store.UploadResult{
		Bucket:      "b",
		Key:         "uploads/report.pdf",
		URL:         "https://b.s3.us-east-1.amazonaws.com/uploads/report.pdf",
		Filename:    "report.pdf",
		SizeBytes:   2048,
		ContentType: "application/pdf",
		UploadedAt:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestUpload(t *testing.T) {
	fake := &fakeStore{uploadRes: sampleResult()}
	out := install(t, fake)

	err := Upload(context.Background(), s3Loader, UploadOptions{
		Path:    "report.pdf",
		DestKey: "uploads/report.pdf",
		Public:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, "report.pdf", fake.gotPath)
	assert.Equal(t, "uploads/report.pdf", fake.gotDestKey)
	assert.True(t, fake.gotPublic)

	assert.Contains(t, out.String(), "Upload successful")
	assert.Contains(t, out.String(), `"success": true`)
	assert.Contains(t, out.String(), `"s3_key": "uploads/report.pdf"`)
	assert.Contains(t, out.String(), `"size_bytes": 2048`)
	assert.Contains(t, out.String(), `"uploaded_at": "2024-05-01T12:00:00Z"`)
	assert.NotContains(t, out.String(), "space_key")
}

func TestUpload_SpacesKeyField(t *testing.T) {
	fake := &fakeStore{uploadRes: sampleResult()}
	out := install(t, fake)

	require.NoError(t, Upload(context.Background(), spacesLoader, UploadOptions{Path: "report.pdf"}))

	assert.Contains(t, out.String(), `"space_key": "uploads/report.pdf"`)
	assert.NotContains(t, out.String(), "s3_key")
}

func TestUpload_ConfigError(t *testing.T) {
	fake := &fakeStore{}
	install(t, fake)

	wantErr := errors.New("missing required environment variables: S3_BUCKET_NAME")
	err := Upload(context.Background(), func() (store.Config, error) {
		return store.Config{}, wantErr
	}, UploadOptions{Path: "report.pdf"})

	require.ErrorIs(t, err, wantErr)
	assert.Empty(t, fake.gotPath, "no operation may run after a config failure")
}

func TestUpload_StoreError(t *testing.T) {
	fake := &fakeStore{err: store.ErrNotFound}
	install(t, fake)

	err := Upload(context.Background(), s3Loader, UploadOptions{Path: "gone.pdf"})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUploadURL(t *testing.T) {
	res := sampleResult()
	res.SourceURL = "https://example.com/report.pdf"
	fake := &fakeStore{uploadRes: res}
	out := install(t, fake)

	err := UploadURL(context.Background(), s3Loader, UploadURLOptions{
		URL:      "https://example.com/report.pdf",
		Filename: "renamed.pdf",
		Public:   false,
	})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/report.pdf", fake.gotURL)
	assert.Equal(t, "renamed.pdf", fake.gotFilename)
	assert.False(t, fake.gotPublic)
	assert.Contains(t, out.String(), `"source_url": "https://example.com/report.pdf"`)
}

func TestList(t *testing.T) {
	fake := &fakeStore{entries: []store.ListEntry{
		{Key: "documents/a.pdf", SizeBytes: 1024, URL: "https://b.s3.us-east-1.amazonaws.com/documents/a.pdf"},
		{Key: "documents/b.pdf", SizeBytes: 4096, URL: "https://b.s3.us-east-1.amazonaws.com/documents/b.pdf"},
	}}
	out := install(t, fake)

	err := List(context.Background(), s3Loader, ListOptions{Prefix: "documents/", Max: 50})
	require.NoError(t, err)

	assert.Equal(t, "documents/", fake.gotPrefix)
	assert.Equal(t, int32(50), fake.gotMax)
	assert.Contains(t, out.String(), "Found 2 files")
	assert.Contains(t, out.String(), "documents/a.pdf")
	assert.Contains(t, out.String(), "documents/b.pdf")
}

func TestList_Empty(t *testing.T) {
	fake := &fakeStore{}
	out := install(t, fake)

	require.NoError(t, List(context.Background(), s3Loader, ListOptions{}))
	assert.Contains(t, out.String(), "No files found.")
}

func TestDelete(t *testing.T) {
	fake := &fakeStore{}
	out := install(t, fake)

	err := Delete(context.Background(), spacesLoader, "documents/a.pdf")
	require.NoError(t, err)

	assert.Equal(t, "documents/a.pdf", fake.gotDelete)
	assert.Contains(t, out.String(), "File deleted")
	assert.Contains(t, out.String(), `"space_key": "documents/a.pdf"`)
	assert.Contains(t, out.String(), `"success": true`)
}

func TestDelete_Error(t *testing.T) {
	fake := &fakeStore{err: store.ErrRemote}
	install(t, fake)

	err := Delete(context.Background(), s3Loader, "documents/a.pdf")
	require.ErrorIs(t, err, store.ErrRemote)
}
