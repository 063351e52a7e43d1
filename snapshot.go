package chatdump

import "context"

// Snapshot represents a captured rendering of a chat page.
type Snapshot struct {
	// HTML is the rendered page markup.
	HTML string

	// Title is the page title at capture time.
	Title string
}

// Snapshotter captures rendered snapshots of live chat pages.
// Implementations hide browser automation: navigation, waiting for the
// host's rendering loop, and materializing virtualized message history.
type Snapshotter interface {
	// Snapshot navigates to target and returns the rendered page.
	// Messages the host never materialized in memory are simply absent
	// from the snapshot; that is a data-availability limit, not an error.
	Snapshot(ctx context.Context, target string) (*Snapshot, error)
}
