package mock

import "github.com/fwojciec/chatdump"

var _ chatdump.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of chatdump.Extractor.
type Extractor struct {
	ExtractMessagesFn func(snapshotHTML string) ([]*chatdump.Message, error)
}

func (e *Extractor) ExtractMessages(snapshotHTML string) ([]*chatdump.Message, error) {
	return e.ExtractMessagesFn(snapshotHTML)
}
