package chatdump

// PageContent holds the main content of a page, used by the whole-page
// fallback export when a snapshot yields no recognizable messages.
type PageContent struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML, with boilerplate
	// (nav, footer, sidebar) removed.
	ContentHTML string
}

// PageExtractor extracts main content from arbitrary HTML pages.
type PageExtractor interface {
	// ExtractPage processes raw HTML and returns the main content.
	ExtractPage(html string) (*PageContent, error)
}
