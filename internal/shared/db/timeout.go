package db

import (
	"context"
	"sync/atomic"
	"time"
)

// defaultQueryTimeout bounds store calls when no timeout was configured.
const defaultQueryTimeout = 5 * time.Second

var queryTimeoutNanos atomic.Int64

func init() {
	queryTimeoutNanos.Store(int64(defaultQueryTimeout))
}

// SetQueryTimeout configures the per-call store deadline. Zero or negative
// restores the default.
func SetQueryTimeout(d time.Duration) {
	if d <= 0 {
		d = defaultQueryTimeout
	}
	queryTimeoutNanos.Store(int64(d))
}

// QueryTimeout returns the configured per-call store deadline.
func QueryTimeout() time.Duration {
	return time.Duration(queryTimeoutNanos.Load())
}

// WithQueryTimeout derives the context a single store call runs under. An
// earlier deadline on the parent still wins.
func WithQueryTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, QueryTimeout())
}
