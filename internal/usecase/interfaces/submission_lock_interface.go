package interfaces

import (
	"context"
	"time"
)

// ISubmissionLock keeps at most one submission in flight per key.
//
// Acquire returns an ownership token; Release only frees the key while it is
// still held with that token, so a holder whose TTL ran out cannot free a
// lock taken by someone else.
type ISubmissionLock interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (token string, acquired bool, err error)
	Release(ctx context.Context, key, token string) error
}
