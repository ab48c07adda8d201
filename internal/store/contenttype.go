package store

import (
	"mime"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// defaultContentType is used when detection fails.
const defaultContentType = "application/octet-stream"

// detectContentType determines the content type for a local file.
// The extension wins when it is a registered type; otherwise the first
// bytes of the file are sniffed. Falls back to application/octet-stream.
func detectContentType(path string) string {
	if ext := filepath.Ext(path); ext != "" {
		if byExt := mime.TypeByExtension(ext); byExt != "" {
			return byExt
		}
	}
	if mt, err := mimetype.DetectFile(path); err == nil {
		return mt.String()
	}
	return defaultContentType
}

// contentTypeForName determines the content type for a bare filename,
// using the extension only. Used for URL uploads where the response
// header takes precedence and no local file exists yet.
func contentTypeForName(name string) string {
	if ext := filepath.Ext(name); ext != "" {
		if byExt := mime.TypeByExtension(ext); byExt != "" {
			return byExt
		}
	}
	return defaultContentType
}
