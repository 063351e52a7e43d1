package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/chatdump"
)

// Ensure Extractor implements chatdump.Extractor at compile time.
var _ chatdump.Extractor = (*Extractor)(nil)

// Extractor extracts messages from chat page snapshots using the selector
// contract of the detected markup dialect.
type Extractor struct {
	registry *Registry
}

// NewExtractor creates an Extractor with the default dialect registry.
func NewExtractor() *Extractor {
	return &Extractor{registry: DefaultRegistry()}
}

// NewExtractorWithRegistry creates an Extractor with a custom registry.
func NewExtractorWithRegistry(registry *Registry) *Extractor {
	return &Extractor{registry: registry}
}

// ExtractMessages parses a snapshot and returns its messages in document
// order. Containers without a renderable body are skipped silently. Returns
// ENOTFOUND when the snapshot holds no message containers at all.
func (e *Extractor) ExtractMessages(snapshotHTML string) ([]*chatdump.Message, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snapshotHTML))
	if err != nil {
		return nil, chatdump.Errorf(chatdump.EINVALID, "failed to parse snapshot: %v", err)
	}

	set := e.registry.GetForHTML(snapshotHTML)

	containers := doc.Find(set.Container)
	if containers.Length() == 0 {
		return nil, chatdump.Errorf(chatdump.ENOTFOUND, "no message containers found")
	}

	var msgs []*chatdump.Message
	containers.Each(func(_ int, sel *goquery.Selection) {
		if msg := extract(sel, set); msg != nil {
			msgs = append(msgs, msg)
		}
	})
	return msgs, nil
}

// ExtractMessage extracts a single message from one container's HTML.
// Returns (nil, nil) when the fragment has no renderable text.
func ExtractMessage(messageHTML string, set SelectorSet) (*chatdump.Message, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(messageHTML))
	if err != nil {
		return nil, chatdump.Errorf(chatdump.EINVALID, "failed to parse message: %v", err)
	}
	sel := doc.Find(set.Container).First()
	if sel.Length() == 0 {
		return nil, nil
	}
	return extract(sel, set), nil
}

// extract pulls author, timestamp, and raw body out of one message
// container. Returns nil when there is no renderable text; missing author
// or timestamp never invalidates a message.
func extract(sel *goquery.Selection, set SelectorSet) *chatdump.Message {
	author := strings.TrimSpace(sel.Find(set.Sender).First().Text())

	ts, ok := sel.Find(set.Timestamp).First().Attr(set.TimestampAttr)
	ts = strings.TrimSpace(ts)
	if !ok || ts == "" {
		ts = strings.TrimSpace(sel.Find(set.RenderedTime).First().Text())
	}

	body := sel.Find(set.Body).First()
	if body.Length() == 0 {
		return nil
	}

	var rawBody string
	if set.RichTextBlock != "" {
		if blocks := body.Find(set.RichTextBlock); blocks.Length() > 0 {
			var b strings.Builder
			blocks.Each(func(_ int, block *goquery.Selection) {
				if h, err := block.Html(); err == nil {
					b.WriteString(h)
					b.WriteString("\n")
				}
			})
			rawBody = b.String()
		}
	}
	if rawBody == "" {
		h, err := body.Html()
		if err != nil {
			return nil
		}
		rawBody = h
	}

	rawBody = strings.TrimSpace(rawBody)
	if rawBody == "" {
		return nil
	}

	return &chatdump.Message{
		Author:    author,
		Timestamp: ts,
		RawBody:   rawBody,
	}
}

// PageTitle returns the snapshot's page title, or "" when absent.
func PageTitle(snapshotHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snapshotHTML))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
