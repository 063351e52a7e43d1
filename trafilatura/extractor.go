// Package trafilatura extracts main page content for the whole-page
// fallback export, used when a snapshot yields no recognizable messages.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/chatdump"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements chatdump.PageExtractor at compile time.
var _ chatdump.PageExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractPage processes raw HTML and returns the main content with
// boilerplate removed.
func (e *Extractor) ExtractPage(rawHTML string) (*chatdump.PageContent, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, chatdump.Errorf(chatdump.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &chatdump.PageContent{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
