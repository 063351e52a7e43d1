// Package htmltomarkdown provides a generic HTML-to-markdown Rewriter built
// on the html-to-markdown library. It backs the whole-page fallback export;
// chat message bodies use the chat-flavored rewriter in rewrite/ instead.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/chatdump"
)

// Ensure Rewriter implements chatdump.Rewriter at compile time.
var _ chatdump.Rewriter = (*Rewriter)(nil)

// Rewriter wraps html-to-markdown to convert page HTML to markdown.
type Rewriter struct {
	conv *converter.Converter
}

// NewRewriter creates a new Rewriter.
func NewRewriter() *Rewriter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Rewriter{conv: conv}
}

// Rewrite transforms HTML content into markdown. Unlike the chat rewriter,
// empty input is an error here: the fallback path has nothing to export
// without page content.
func (r *Rewriter) Rewrite(rawBody string) (string, error) {
	if strings.TrimSpace(rawBody) == "" {
		return "", chatdump.Errorf(chatdump.EINVALID, "empty HTML input")
	}

	result, err := r.conv.ConvertString(rawBody)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result) + "\n", nil
}
