package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	lockTTL       = 10 * time.Second
	lockRetryWait = 25 * time.Millisecond
)

// releaseScript deletes the lock key only when it still holds our token,
// so an expired lock re-acquired by another request is never released here.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// EntityLocker serializes per-entity mutations (feed, sell) across
// concurrent requests using Redis SET NX with a TTL.
// Key format: lock:<entity key>
type EntityLocker struct {
	client *redis.Client
}

// NewEntityLocker creates an EntityLocker wrapping the given Redis client.
func NewEntityLocker(client *redis.Client) *EntityLocker {
	return &EntityLocker{client: client}
}

// Acquire polls until the lock for key is held or ctx is done. The returned
// release function deletes the lock; the TTL bounds the damage of a crashed
// holder.
func (l *EntityLocker) Acquire(ctx context.Context, key string) (func(), error) {
	token := randomToken()
	redisKey := "lock:" + key

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire lock: %w", err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryWait):
		}
	}

	release := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		defer cancel()
		_ = releaseScript.Run(releaseCtx, l.client, []string{redisKey}, token).Err()
	}
	return release, nil
}

func randomToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
