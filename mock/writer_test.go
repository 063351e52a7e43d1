package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/chatdump"
	"github.com/fwojciec/chatdump/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where DocumentWriter is expected
	var _ chatdump.DocumentWriter = &mock.DocumentWriter{}
}

func TestDocumentWriter_WriteDocument(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteDocumentFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *chatdump.ExportDocument
		w := &mock.DocumentWriter{
			WriteDocumentFn: func(_ context.Context, doc *chatdump.ExportDocument) error {
				calledWith = doc
				return nil
			},
		}

		doc := &chatdump.ExportDocument{
			Title: "General",
			Count: 1,
			Body:  "**Alice**\nhi\n\n",
		}

		err := w.WriteDocument(context.Background(), doc)

		require.NoError(t, err)
		assert.Equal(t, doc, calledWith)
	})
}
