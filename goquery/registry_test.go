package goquery_test

import (
	"testing"

	"github.com/fwojciec/chatdump"
	"github.com/fwojciec/chatdump/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("returns registered set for detected dialect", func(t *testing.T) {
		t.Parallel()

		r := goquery.DefaultRegistry()

		set := r.GetForHTML(`<div class="c-message"><span class="c-message__body">hi</span></div>`)

		assert.Equal(t, chatdump.DialectLegacy, set.Dialect)
	})

	t.Run("falls back for unknown markup", func(t *testing.T) {
		t.Parallel()

		r := goquery.DefaultRegistry()

		set := r.GetForHTML(`<p>nothing recognizable</p>`)

		assert.Equal(t, chatdump.DialectModern, set.Dialect)
	})

	t.Run("register replaces an existing set", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewRegistry(goquery.NewDetector(), goquery.ModernSelectors())
		custom := goquery.ModernSelectors()
		custom.Container = `[data-custom="msg"]`
		r.Register(chatdump.DialectModern, custom)

		set, ok := r.Get(chatdump.DialectModern)

		require.True(t, ok)
		assert.Equal(t, `[data-custom="msg"]`, set.Container)
	})

	t.Run("get reports unregistered dialects", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewRegistry(goquery.NewDetector(), goquery.ModernSelectors())

		_, ok := r.Get(chatdump.DialectLegacy)

		assert.False(t, ok)
	})

	t.Run("list returns registered dialects", func(t *testing.T) {
		t.Parallel()

		r := goquery.DefaultRegistry()

		assert.ElementsMatch(t,
			[]chatdump.Dialect{chatdump.DialectModern, chatdump.DialectLegacy},
			r.List(),
		)
	})
}
