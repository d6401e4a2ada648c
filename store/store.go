// Package store defines the replay-guard persistence interface.
//
// A Store remembers which signatures have already been accepted within the
// freshness window, so an exact resubmission of a captured delivery can be
// rejected even though its signature and timestamp still check out.
// Backends live in subpackages (memory, redis).
package store

import (
	"context"
	"time"
)

// Store is the replay-guard persistence interface.
type Store interface {
	// MarkSeen records key for the given retention window and reports
	// whether it had already been recorded. The check and the write must
	// be a single atomic step.
	MarkSeen(ctx context.Context, key string, window time.Duration) (bool, error)

	// Ping checks backend connectivity.
	Ping(ctx context.Context) error

	// Close releases the backend connection.
	Close() error
}
