package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/chatdump"
	"github.com/fwojciec/chatdump/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Writer implements chatdump.DocumentWriter at compile time.
var _ chatdump.DocumentWriter = (*fs.Writer)(nil)

func testDocument() *chatdump.ExportDocument {
	return &chatdump.ExportDocument{
		Title: "General",
		Count: 1,
		Body:  "**Alice**\nhi\n\n",
	}
}

func TestWriter_WriteDocument(t *testing.T) {
	t.Parallel()

	t.Run("writes the rendered document", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		err := w.WriteDocument(context.Background(), testDocument())

		require.NoError(t, err)
		data, err := os.ReadFile(filepath.Join(dir, "General_export.md"))
		require.NoError(t, err)
		assert.Equal(t, "# General\n\n(Last 1 messages)\n\n---\n\n**Alice**\nhi\n\n", string(data))
	})

	t.Run("creates missing directories", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "out")
		w := fs.NewWriter(dir)

		err := w.WriteDocument(context.Background(), testDocument())

		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "General_export.md"))
	})

	t.Run("skips rewriting identical content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		doc := testDocument()

		require.NoError(t, w.WriteDocument(context.Background(), doc))
		path := filepath.Join(dir, "General_export.md")

		// Backdate the file so an overwrite would be visible.
		past := time.Now().Add(-time.Hour)
		require.NoError(t, os.Chtimes(path, past, past))

		require.NoError(t, w.WriteDocument(context.Background(), doc))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.WithinDuration(t, past, info.ModTime(), time.Minute)
	})

	t.Run("overwrites changed content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		require.NoError(t, w.WriteDocument(context.Background(), testDocument()))

		doc := testDocument()
		doc.Body = "**Alice**\nupdated\n\n"
		require.NoError(t, w.WriteDocument(context.Background(), doc))

		data, err := os.ReadFile(filepath.Join(dir, "General_export.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "updated")
	})

	t.Run("rejects invalid documents", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		err := w.WriteDocument(context.Background(), &chatdump.ExportDocument{Title: "x"})

		assert.Equal(t, chatdump.EEMPTY, chatdump.ErrorCode(err))
	})
}

func TestComputeHash(t *testing.T) {
	t.Parallel()

	t.Run("stable for identical content", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, fs.ComputeHash("abc"), fs.ComputeHash("abc"))
	})

	t.Run("differs for different content", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, fs.ComputeHash("abc"), fs.ComputeHash("abd"))
	})
}
