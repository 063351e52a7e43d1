package readability_test

import (
	"testing"

	"github.com/fwojciec/chatdump"
	"github.com/fwojciec/chatdump/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements chatdump.PageExtractor at compile time.
var _ chatdump.PageExtractor = (*readability.Extractor)(nil)

func TestExtractor_ExtractPage(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Release Notes - Acme</title></head>
<body>
<nav>Navigation here</nav>
<article>
<h1>Release Notes</h1>
<p>The main body of the announcement, long enough for the scorer to treat
it as the primary content of the document rather than boilerplate.</p>
<p>A second paragraph with more detail about what shipped this week.</p>
</article>
<footer>Footer content</footer>
</body>
</html>`

		ext := readability.NewExtractor()
		content, err := ext.ExtractPage(html)

		require.NoError(t, err)
		assert.NotEmpty(t, content.Title)
		assert.Contains(t, content.ContentHTML, "primary content of the document")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := readability.NewExtractor()
		_, err := ext.ExtractPage("")

		assert.Equal(t, chatdump.EINVALID, chatdump.ErrorCode(err))
	})
}
