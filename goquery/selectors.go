// Package goquery implements message extraction from chat page snapshots
// using CSS selectors. The host's structural markers (message containers,
// sender names, timestamps, body regions) are an external contract: when the
// host changes them, extraction silently finds fewer or no messages.
package goquery

import "github.com/fwojciec/chatdump"

// SelectorSet captures the selector contract for one markup dialect.
type SelectorSet struct {
	// Dialect names the client generation this set targets.
	Dialect chatdump.Dialect

	// Container selects one message's root element.
	Container string

	// Sender selects the sender display name within a container.
	Sender string

	// Timestamp selects the element carrying the machine timestamp.
	Timestamp string

	// TimestampAttr is the attribute on Timestamp holding the numeric
	// seconds-with-fraction value. Preferred over rendered text because
	// it is lossless and locale-independent.
	TimestampAttr string

	// RenderedTime selects the human-rendered timestamp text, used when
	// no machine timestamp is present.
	RenderedTime string

	// Body selects the message-body region. A container without it has
	// no renderable text (system notices, attachment-only messages).
	Body string

	// RichTextBlock selects rich-text sub-blocks within Body. Empty when
	// the dialect renders the body as a single region.
	RichTextBlock string
}

// ModernSelectors returns the selector contract for current host clients.
func ModernSelectors() SelectorSet {
	return SelectorSet{
		Dialect:       chatdump.DialectModern,
		Container:     `[data-qa="message_container"]`,
		Sender:        `[data-qa="message_sender_name"]`,
		Timestamp:     `.c-timestamp`,
		TimestampAttr: "data-ts",
		RenderedTime:  `.c-timestamp__label`,
		Body:          `.c-message_kit__blocks`,
		RichTextBlock: `.p-rich_text_section`,
	}
}

// LegacySelectors returns the selector contract for older host clients,
// which rendered the body as a single region without rich-text blocks.
func LegacySelectors() SelectorSet {
	return SelectorSet{
		Dialect:       chatdump.DialectLegacy,
		Container:     `.c-message`,
		Sender:        `.c-message__sender`,
		Timestamp:     `.c-timestamp`,
		TimestampAttr: "data-ts",
		RenderedTime:  `.c-timestamp__label`,
		Body:          `.c-message__body`,
	}
}
