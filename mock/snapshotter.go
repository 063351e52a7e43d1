package mock

import (
	"context"

	"github.com/fwojciec/chatdump"
)

var _ chatdump.Snapshotter = (*Snapshotter)(nil)

// Snapshotter is a mock implementation of chatdump.Snapshotter.
type Snapshotter struct {
	SnapshotFn func(ctx context.Context, target string) (*chatdump.Snapshot, error)
}

func (s *Snapshotter) Snapshot(ctx context.Context, target string) (*chatdump.Snapshot, error) {
	return s.SnapshotFn(ctx, target)
}
