package chatdump_test

import (
	"testing"

	"github.com/fwojciec/chatdump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelTitle(t *testing.T) {
	t.Parallel()

	t.Run("strips host suffix", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "General", chatdump.ChannelTitle("General | Slack"))
	})

	t.Run("keeps title without suffix", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "random", chatdump.ChannelTitle("random"))
	})

	t.Run("strips only the first suffix marker", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a", chatdump.ChannelTitle("a | b | c"))
	})
}

func TestSanitizeTitle(t *testing.T) {
	t.Parallel()

	t.Run("keeps alphanumerics", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "General42", chatdump.SanitizeTitle("General42"))
	})

	t.Run("replaces everything else with underscores", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "dev_ops__2024_", chatdump.SanitizeTitle("dev-ops (2024)"))
	})

	t.Run("replaces non-ascii runes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "caf_", chatdump.SanitizeTitle("café"))
	})
}

func TestExportDocument_Filename(t *testing.T) {
	t.Parallel()

	doc := &chatdump.ExportDocument{Title: chatdump.ChannelTitle("General | Slack")}

	assert.Equal(t, "General_export.md", doc.Filename())
}

func TestExportDocument_Render(t *testing.T) {
	t.Parallel()

	doc := &chatdump.ExportDocument{
		Title: "General",
		Count: 2,
		Body:  "**Alice**\nhi\n\n",
	}

	rendered := doc.Render()

	assert.Equal(t, "# General\n\n(Last 2 messages)\n\n---\n\n**Alice**\nhi\n\n", rendered)
}

func TestExportDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		doc := &chatdump.ExportDocument{Title: "General", Count: 1, Body: "hi\n"}

		require.NoError(t, doc.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()

		doc := &chatdump.ExportDocument{Count: 1, Body: "hi\n"}

		err := doc.Validate()
		assert.Equal(t, chatdump.EINVALID, chatdump.ErrorCode(err))
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()

		doc := &chatdump.ExportDocument{Title: "General"}

		err := doc.Validate()
		assert.Equal(t, chatdump.EEMPTY, chatdump.ErrorCode(err))
	})
}
