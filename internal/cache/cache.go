package cache

import (
	"context"
	"time"
)

// Memo is a best-effort memoization cache for computed analytics results
// (snapshots, predictions). A miss or a failed set is never an error for
// the caller; absence of the cache changes latency only, not correctness.
type Memo interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Clear(ctx context.Context)
}

// NoopMemo disables memoization altogether.
type NoopMemo struct{}

func (NoopMemo) Get(_ context.Context, _ string) ([]byte, bool)             { return nil, false }
func (NoopMemo) Set(_ context.Context, _ string, _ []byte, _ time.Duration) {}
func (NoopMemo) Clear(_ context.Context)                                    {}
