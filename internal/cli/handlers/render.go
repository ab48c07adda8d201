package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/CloserlookAI/file-upload-tool/internal/store"
)

// stdout is the destination for rendered results. Replaced in tests.
var stdout io.Writer = os.Stdout

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	keyStyle  = lipgloss.NewStyle().Bold(true)
)

func okMark() string { return okStyle.Render("✓") }

// uploadResultJSON mirrors the result object emitted on stdout. The key
// field follows the backend's vocabulary: s3_key for Amazon S3,
// space_key for Spaces.
type uploadResultJSON struct {
	Success     bool   `json:"success"`
	Bucket      string `json:"bucket"`
	S3Key       string `json:"s3_key,omitempty"`
	SpaceKey    string `json:"space_key,omitempty"`
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	SizeBytes   int64  `json:"size_bytes"`
	ContentType string `json:"content_type"`
	UploadedAt  string `json:"uploaded_at"`
	SourceURL   string `json:"source_url,omitempty"`
}

func printUploadResult(backend store.Backend, res *store.UploadResult) {
	out := uploadResultJSON{
		Success:     true,
		Bucket:      res.Bucket,
		URL:         res.URL,
		Filename:    res.Filename,
		SizeBytes:   res.SizeBytes,
		ContentType: res.ContentType,
		UploadedAt:  res.UploadedAt.Format(time.RFC3339),
		SourceURL:   res.SourceURL,
	}
	if backend == store.BackendSpaces {
		out.SpaceKey = res.Key
	} else {
		out.S3Key = res.Key
	}

	fmt.Fprintf(stdout, "%s Upload successful\n", okMark())
	fmt.Fprintf(stdout, "  URL:  %s\n", res.URL)
	fmt.Fprintf(stdout, "  Size: %s\n", formatSize(res.SizeBytes))

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return
	}
	fmt.Fprintln(stdout, string(data))
}

func printListing(entries []store.ListEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(stdout, "No files found.")
		return
	}

	fmt.Fprintf(stdout, "Found %d files:\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(stdout, "  %s %s\n", keyStyle.Render(e.Key), dimStyle.Render("("+formatSize(e.SizeBytes)+")"))
		fmt.Fprintf(stdout, "    %s\n", e.URL)
	}
}

func printDeleted(backend store.Backend, key string) {
	field := "s3_key"
	if backend == store.BackendSpaces {
		field = "space_key"
	}
	fmt.Fprintf(stdout, "%s File deleted\n", okMark())

	data, err := json.MarshalIndent(map[string]any{
		"success": true,
		field:     key,
		"message": "File deleted successfully",
	}, "", "  ")
	if err != nil {
		return
	}
	fmt.Fprintln(stdout, string(data))
}

// formatSize renders a byte count as a human-readable string.
func formatSize(n int64) string {
	size := float64(n)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if size < 1024 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.2f PB", size)
}
