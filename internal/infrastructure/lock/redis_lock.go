package lock

import (
	"context"
	"fmt"
	"time"

	"dubiqo_quotes/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "quotes:inflight:"

// releaseScript deletes the key only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisSubmissionLock shares the in-flight guard across API replicas.
type RedisSubmissionLock struct {
	client   redis.Cmdable
	newToken func() string
}

var _ interfaces.ISubmissionLock = (*RedisSubmissionLock)(nil)

func NewRedisSubmissionLock(client redis.Cmdable) *RedisSubmissionLock {
	return &RedisSubmissionLock{client: client, newToken: uuid.NewString}
}

// Acquire sets the key only if it is absent. The TTL frees the key if the
// holder dies before Release.
func (l *RedisSubmissionLock) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := l.newToken()
	ok, err := l.client.SetNX(ctx, keyPrefix+key, token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("acquire submission lock: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

func (l *RedisSubmissionLock) Release(ctx context.Context, key, token string) error {
	if token == "" {
		return nil
	}
	if err := releaseScript.Run(ctx, l.client, []string{keyPrefix + key}, token).Err(); err != nil {
		return fmt.Errorf("release submission lock: %w", err)
	}
	return nil
}
