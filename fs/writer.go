// Package fs provides file-based storage for export documents.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/chatdump"
)

// Ensure Writer implements chatdump.DocumentWriter at compile time.
var _ chatdump.DocumentWriter = (*Writer)(nil)

// Writer writes export documents as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDocument writes a document to disk as a markdown file. When the file
// already exists with identical content, the write is skipped so repeated
// exports of an idle channel leave the file untouched.
func (w *Writer) WriteDocument(ctx context.Context, doc *chatdump.ExportDocument) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, doc.Filename())
	content := doc.Render()

	if existing, err := os.ReadFile(fullPath); err == nil {
		if ComputeHash(string(existing)) == ComputeHash(content) {
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(content), 0644)
}

// Path returns the full path the document would be written to.
func (w *Writer) Path(doc *chatdump.ExportDocument) string {
	return filepath.Join(w.baseDir, doc.Filename())
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
