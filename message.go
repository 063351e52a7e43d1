package chatdump

// Message represents one extracted chat message before conversion.
type Message struct {
	// Author is the sender's display name. Empty if the host did not
	// render one (bot messages, deleted accounts).
	Author string

	// Timestamp is the source-supplied value: either a numeric
	// seconds-with-fraction epoch string or a host-rendered human string.
	// Empty if absent.
	Timestamp string

	// RawBody is the inner HTML fragment of the message-body region.
	// A Message is only constructed for a non-empty body, so RawBody is
	// never empty.
	RawBody string
}

// Extractor extracts messages from a chat page snapshot.
// Implementations hide the host's selector contract: the structural markers
// that identify message containers, sender names, timestamps, and body
// regions in the rendered markup.
type Extractor interface {
	// ExtractMessages parses a snapshot and returns its messages in
	// document order. Messages without a renderable body (system
	// notices, attachment-only messages) are skipped, not errors.
	ExtractMessages(snapshotHTML string) ([]*Message, error)
}

// TailWindow returns the last limit messages of msgs in original order.
// A non-positive limit falls back to DefaultLimit. Selection happens before
// assembly: the window is a tail of the discovered sequence, never a
// filtered subset.
func TailWindow(msgs []*Message, limit int) []*Message {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(msgs) <= limit {
		return msgs
	}
	return msgs[len(msgs)-limit:]
}

// DefaultLimit is the number of messages exported when no valid count is
// requested.
const DefaultLimit = 100
