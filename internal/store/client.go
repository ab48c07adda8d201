// Package store provides a client for S3-compatible object storage
// (Amazon S3 and DigitalOcean Spaces).
//
// A single Client serves both backends; the differences (endpoint
// construction, object URL format, CDN host override) are captured in
// the Config rather than duplicated per backend.
package store

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// fetchTimeout bounds the download of a remote source in UploadFromURL.
const fetchTimeout = 30 * time.Second

// Client performs upload, list, and delete operations against one
// bucket of an S3-compatible object store. Every operation is a single
// call to the backend; there are no retries beyond what the SDK does
// itself.
type Client struct {
	s3    *s3.Client
	cfg   Config
	httpc *http.Client
}

// New creates a Client from the given configuration.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid storage config: %w", err)
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		config.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint := cfg.endpointURL(); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = false // S3 and Spaces both use virtual-hosted style
	})

	return &Client{
		s3:    client,
		cfg:   cfg,
		httpc: &http.Client{Timeout: fetchTimeout},
	}, nil
}

// UploadFile uploads a local file to the configured bucket.
//
// The destination key is destKey when given; otherwise it is derived
// from the filename plus the configured key prefix. With public set,
// the object is stored with a public-read ACL.
func (c *Client) UploadFile(ctx context.Context, localPath, destKey string, public bool) (*UploadResult, error) {
	info, err := os.Stat(localPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, localPath)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrNotFound, localPath)
	}

	f, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, localPath)
	}
	defer f.Close()

	filename := filepath.Base(localPath)
	key := destKey
	if key == "" {
		key = c.objectKey(filename)
	}

	return c.putObject(ctx, putRequest{
		key:         key,
		body:        f,
		size:        info.Size(),
		contentType: detectContentType(localPath),
		filename:    filename,
		public:      public,
	})
}

// UploadFromURL downloads a remote resource and uploads it to the
// configured bucket.
//
// The filename is taken from the URL path when not given explicitly;
// the content type comes from the source response header when present.
func (c *Client) UploadFromURL(ctx context.Context, srcURL, filename, destKey string, public bool) (*UploadResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %s", ErrFetch, srcURL, resp.Status)
	}

	if filename == "" {
		filename = filenameFromURL(srcURL)
	}

	// Spool to a temp file so the object size is known before the
	// single PutObject call.
	tmp, err := os.CreateTemp("", "upload-*")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	size, err := io.Copy(tmp, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = contentTypeForName(filename)
	}

	key := destKey
	if key == "" {
		key = c.objectKey(filename)
	}

	return c.putObject(ctx, putRequest{
		key:         key,
		body:        tmp,
		size:        size,
		contentType: contentType,
		filename:    filename,
		sourceURL:   srcURL,
		public:      public,
	})
}

// ListFiles returns up to maxKeys objects, in the order the backend
// provides them (lexicographic by key). An empty prefix falls back to
// the configured key prefix.
func (c *Client) ListFiles(ctx context.Context, prefix string, maxKeys int32) ([]ListEntry, error) {
	if prefix == "" {
		prefix = c.cfg.KeyPrefix
	}

	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(c.cfg.Bucket),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}
	if maxKeys > 0 {
		input.MaxKeys = aws.Int32(maxKeys)
	}

	out, err := c.s3.ListObjectsV2(ctx, input)
	if err != nil {
		return nil, c.wrapAPIError("list", "", err)
	}

	entries := make([]ListEntry, 0, len(out.Contents))
	for _, obj := range out.Contents {
		if obj.Key == nil {
			continue
		}
		entries = append(entries, ListEntry{
			Key:          *obj.Key,
			SizeBytes:    aws.ToInt64(obj.Size),
			LastModified: aws.ToTime(obj.LastModified),
			URL:          c.ObjectURL(*obj.Key),
		})
	}
	return entries, nil
}

// DeleteFile removes an object from the configured bucket. Deleting a
// key that does not exist succeeds; S3 delete is idempotent.
func (c *Client) DeleteFile(ctx context.Context, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return c.wrapAPIError("delete", key, err)
	}
	return nil
}

// ObjectURL returns the public URL for a key: the CDN base URL when
// configured, otherwise the backend's default virtual-hosted-style URL.
func (c *Client) ObjectURL(key string) string {
	if c.cfg.CDNBaseURL != "" {
		return strings.TrimSuffix(c.cfg.CDNBaseURL, "/") + "/" + key
	}
	if host := c.cfg.endpointHost(); host != "" {
		return fmt.Sprintf("https://%s.%s/%s", c.cfg.Bucket, host, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.cfg.Bucket, c.cfg.Region, key)
}

// putRequest carries everything putObject needs for one upload.
type putRequest struct {
	key         string
	body        io.Reader
	size        int64
	contentType string
	filename    string
	sourceURL   string
	public      bool
}

// putObject issues the single PutObject call shared by both upload paths.
func (c *Client) putObject(ctx context.Context, req putRequest) (*UploadResult, error) {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(c.cfg.Bucket),
		Key:           aws.String(req.key),
		Body:          req.body,
		ContentLength: aws.Int64(req.size),
		ContentType:   aws.String(req.contentType),
	}
	if req.public {
		input.ACL = types.ObjectCannedACLPublicRead
	}

	if _, err := c.s3.PutObject(ctx, input); err != nil {
		return nil, c.wrapAPIError("upload", req.key, err)
	}

	return &UploadResult{
		Bucket:      c.cfg.Bucket,
		Key:         req.key,
		URL:         c.ObjectURL(req.key),
		Filename:    req.filename,
		SizeBytes:   req.size,
		ContentType: req.contentType,
		UploadedAt:  time.Now().UTC(),
		SourceURL:   req.sourceURL,
	}, nil
}

// objectKey builds the destination key from a filename and the
// configured prefix.
func (c *Client) objectKey(filename string) string {
	if c.cfg.KeyPrefix == "" {
		return filename
	}
	return strings.TrimSuffix(c.cfg.KeyPrefix, "/") + "/" + filename
}

// filenameFromURL extracts the last path segment of a URL, or generates
// a timestamped name when the URL has no usable path.
func filenameFromURL(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil {
		if name := path.Base(u.Path); name != "" && name != "." && name != "/" {
			return name
		}
	}
	return "download_" + time.Now().UTC().Format("20060102_150405")
}
