package chatdump

import (
	"context"
	"strconv"
	"strings"
)

// ExportDocument represents the final export artifact.
type ExportDocument struct {
	// Title is the channel title derived from the host page title.
	Title string

	// Count is the number of messages actually rendered into Body. It may
	// be lower than the requested window when messages were skipped as
	// unrenderable.
	Count int

	// Body holds the rendered message blocks.
	Body string
}

// Validate returns an error if the document contains invalid fields.
func (d *ExportDocument) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if d.Count <= 0 || d.Body == "" {
		return Errorf(EEMPTY, "document has no content")
	}
	return nil
}

// Render returns the full file content: a title header, the exported
// message count, a separator rule, and the message blocks.
func (d *ExportDocument) Render() string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(d.Title)
	b.WriteString("\n\n(Last ")
	b.WriteString(strconv.Itoa(d.Count))
	b.WriteString(" messages)\n\n---\n\n")
	b.WriteString(d.Body)
	return b.String()
}

// Filename returns the artifact file name for the document:
// <SanitizedTitle>_export.md.
func (d *ExportDocument) Filename() string {
	return SanitizeTitle(d.Title) + "_export.md"
}

// DocumentWriter writes export documents to storage.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, doc *ExportDocument) error
}

// ChannelTitle strips the host application's suffix from a page title.
// Hosts render page titles like "General | Slack"; only the channel part
// identifies the export.
func ChannelTitle(pageTitle string) string {
	title := pageTitle
	if i := strings.Index(title, " | "); i >= 0 {
		title = title[:i]
	}
	return strings.TrimSpace(title)
}

// SanitizeTitle makes a title safe for use in a file name by replacing
// every character outside [A-Za-z0-9] with an underscore.
func SanitizeTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range title {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
