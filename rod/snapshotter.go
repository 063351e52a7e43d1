// Package rod captures rendered chat page snapshots using Chrome browser
// automation. Chat clients virtualize their message lists, so older messages
// only exist in the DOM after the pane has been scrolled; the snapshotter
// performs paced backfill scrolling before reading the page.
package rod

import (
	"context"
	"fmt"

	"github.com/fwojciec/chatdump"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"golang.org/x/time/rate"
)

// Ensure Snapshotter implements chatdump.Snapshotter at compile time.
var _ chatdump.Snapshotter = (*Snapshotter)(nil)

// Defaults for backfill scrolling.
const (
	// DefaultScrollPasses is how many times the message pane is scrolled
	// to its top before the snapshot is read.
	DefaultScrollPasses = 10

	// DefaultScrollRate is the number of scroll passes per second. The
	// pacing gives the host's rendering loop time to materialize rows.
	DefaultScrollRate = 2.0

	// DefaultPaneSelector selects the host's virtualized message pane.
	DefaultPaneSelector = ".c-virtual_list__scroll_container"
)

// Snapshotter captures rendered chat pages from a headless Chrome browser.
// Snapshotter is safe for concurrent use by multiple goroutines.
type Snapshotter struct {
	browser      *rod.Browser
	scrollPasses int
	limiter      *rate.Limiter
	paneSelector string
}

// Option configures a Snapshotter.
type Option func(*Snapshotter)

// WithScrollPasses sets the number of backfill scroll passes.
// Zero disables backfill entirely.
func WithScrollPasses(n int) Option {
	return func(s *Snapshotter) {
		s.scrollPasses = n
	}
}

// WithScrollRate sets the number of scroll passes per second.
func WithScrollRate(perSecond float64) Option {
	return func(s *Snapshotter) {
		s.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// WithPaneSelector overrides the selector for the virtualized message pane.
func WithPaneSelector(selector string) Option {
	return func(s *Snapshotter) {
		s.paneSelector = selector
	}
}

// NewSnapshotter creates a new Snapshotter that launches a headless Chrome
// browser. Close must be called when the Snapshotter is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewSnapshotter(opts ...Option) (*Snapshotter, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	s := &Snapshotter{
		browser:      browser,
		scrollPasses: DefaultScrollPasses,
		limiter:      rate.NewLimiter(rate.Limit(DefaultScrollRate), 1),
		paneSelector: DefaultPaneSelector,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Snapshot navigates to target, backfills the message pane, and returns the
// rendered page. History the host never materialized is simply absent from
// the result.
func (s *Snapshotter) Snapshot(ctx context.Context, target string) (*chatdump.Snapshot, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := page.Navigate(target); err != nil {
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	if err := s.backfill(ctx, page); err != nil {
		return nil, err
	}

	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	info, err := page.Info()
	if err != nil {
		return nil, err
	}

	return &chatdump.Snapshot{HTML: html, Title: info.Title}, nil
}

// backfill scrolls the message pane to its top repeatedly, paced by the
// limiter, so the virtualized list loads older rows.
func (s *Snapshotter) backfill(ctx context.Context, page *rod.Page) error {
	js := fmt.Sprintf(
		`() => { const pane = document.querySelector(%q); if (pane) { pane.scrollTop = 0; } }`,
		s.paneSelector,
	)
	for i := 0; i < s.scrollPasses; i++ {
		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}
		if _, err := page.Eval(js); err != nil {
			return err
		}
	}
	return nil
}

// Close releases browser resources.
func (s *Snapshotter) Close() error {
	return s.browser.Close()
}
