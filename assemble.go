package chatdump

import (
	"strings"
	"time"
)

// Assembler folds extracted messages into a single export document.
// The zero value is not usable; Rewriter must be set.
type Assembler struct {
	// Rewriter converts message bodies to markdown.
	Rewriter Rewriter

	// Location is the zone used for numeric timestamps. Nil means
	// time.Local, matching the historical exporter behavior.
	Location *time.Location

	// WithSeconds includes seconds in formatted timestamps.
	WithSeconds bool

	// DedupTimestamps suppresses a timestamp line that is textually
	// identical to the previously emitted one, grouping consecutive
	// same-minute messages. When unset, a separator rule is emitted
	// between messages instead.
	DedupTimestamps bool
}

// Assemble renders msgs, in order, into an export document titled title.
// Messages whose body rewrites to nothing are silently skipped. When every
// message is skipped, Assemble returns an EEMPTY error and no document.
//
// Callers select the message window before assembly (see TailWindow).
func (a *Assembler) Assemble(title string, msgs []*Message) (*ExportDocument, error) {
	var b strings.Builder
	var count int
	var prevTS string

	for _, msg := range msgs {
		if msg == nil {
			continue
		}

		body, err := a.Rewriter.Rewrite(msg.RawBody)
		if err != nil {
			continue
		}
		body = strings.TrimSpace(body)
		if body == "" {
			continue
		}

		if !a.DedupTimestamps && count > 0 {
			b.WriteString("---\n\n")
		}

		if msg.Author != "" {
			b.WriteString("**")
			b.WriteString(msg.Author)
			b.WriteString("**\n")
		}

		if ts := FormatTimestamp(msg.Timestamp, a.Location, a.WithSeconds); ts != "" {
			if !a.DedupTimestamps || ts != prevTS {
				b.WriteString(ts)
				b.WriteString("\n")
			}
			prevTS = ts
		}

		b.WriteString(body)
		b.WriteString("\n\n")
		count++
	}

	if count == 0 {
		return nil, Errorf(EEMPTY, "no exportable messages")
	}

	return &ExportDocument{
		Title: title,
		Count: count,
		Body:  b.String(),
	}, nil
}
