package mock

import "github.com/fwojciec/chatdump"

var _ chatdump.PageExtractor = (*PageExtractor)(nil)

// PageExtractor is a mock implementation of chatdump.PageExtractor.
type PageExtractor struct {
	ExtractPageFn func(html string) (*chatdump.PageContent, error)
}

func (e *PageExtractor) ExtractPage(html string) (*chatdump.PageContent, error) {
	return e.ExtractPageFn(html)
}
