package lock

import (
	"context"
	"sync"
	"time"

	"dubiqo_quotes/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type memoryHold struct {
	token   string
	expires time.Time
}

// MemorySubmissionLock is the single-process fallback used when no Redis
// address is configured.
type MemorySubmissionLock struct {
	mu       sync.Mutex
	held     map[string]memoryHold
	nowFunc  func() time.Time
	newToken func() string
}

var _ interfaces.ISubmissionLock = (*MemorySubmissionLock)(nil)

func NewMemorySubmissionLock() *MemorySubmissionLock {
	return &MemorySubmissionLock{
		held:     map[string]memoryHold{},
		nowFunc:  time.Now,
		newToken: uuid.NewString,
	}
}

func (l *MemorySubmissionLock) Acquire(_ context.Context, key string, ttl time.Duration) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.nowFunc()
	if h, ok := l.held[key]; ok && now.Before(h.expires) {
		return "", false, nil
	}
	token := l.newToken()
	l.held[key] = memoryHold{token: token, expires: now.Add(ttl)}
	return token, true, nil
}

func (l *MemorySubmissionLock) Release(_ context.Context, key, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if h, ok := l.held[key]; ok && h.token == token {
		delete(l.held, key)
	}
	return nil
}
