package chatdump

// Rewriter converts a message-body HTML fragment into portable markdown.
type Rewriter interface {
	// Rewrite transforms an HTML fragment into plain structured text.
	// Malformed markup degrades to tag-stripped text rather than failing;
	// a fragment with no renderable content yields an empty string.
	Rewrite(rawBody string) (string, error)
}
