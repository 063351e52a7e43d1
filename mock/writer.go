package mock

import (
	"context"

	"github.com/fwojciec/chatdump"
)

var _ chatdump.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of chatdump.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *chatdump.ExportDocument) error
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *chatdump.ExportDocument) error {
	return w.WriteDocumentFn(ctx, doc)
}
