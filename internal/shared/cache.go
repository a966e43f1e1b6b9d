package shared

import "context"

// Invalidator signals derived-data caches that a source collection changed.
// Implementations bump a version so stale aggregates are recomputed on the
// next read.
type Invalidator interface {
	Bump(ctx context.Context) error
}
