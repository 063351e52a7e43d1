// Package readability extracts main page content using go-readability.
// It is an alternative to the trafilatura extractor for pages where
// readability's scoring handles the layout better.
package readability

import (
	"strings"

	"github.com/fwojciec/chatdump"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements chatdump.PageExtractor at compile time.
var _ chatdump.PageExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractPage processes raw HTML and returns the main content.
func (e *Extractor) ExtractPage(rawHTML string) (*chatdump.PageContent, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, chatdump.Errorf(chatdump.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &chatdump.PageContent{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
