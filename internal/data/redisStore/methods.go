package redisStore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// incrementWindow counts a hit and arms the expiry whenever the key has none, in one atomic step.
// A counter left without a TTL by an earlier failure gets one on its next hit.
var incrementWindow = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if redis.call('PTTL', KEYS[1]) < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return count
`)

// IncrementWindow counts one hit on key and returns the running total of the current window.
func (s *Store) IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	return incrementWindow.Run(ctx, s.client, []string{key}, window.Milliseconds()).Int64()
}

func (s *Store) TTL(ctx context.Context, key string) (time.Duration, error) {
	return s.client.TTL(ctx, key).Result()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
