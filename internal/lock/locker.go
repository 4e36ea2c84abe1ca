// Package lock provides a Redis mutex bounded by both an acquisition wait
// and a lease. The holder is identified by a random value so only the
// owner can release it.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "go-gin-concert-booking/pkg/app_errors"
	"go-gin-concert-booking/pkg/clock"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLeaseLost 釋放時發現鎖已過期或被他人持有
var ErrLeaseLost = errors.New("lock lease lost before release")

const defaultPollInterval = 50 * time.Millisecond

// Guard 代表一次成功取得的鎖
type Guard struct {
	Key       string
	Value     string
	ExpiresAt time.Time
}

type Locker interface {
	// TryAcquire 在 wait 內輪詢取得鎖，逾時回傳 apperrors.ErrLockNotAcquired
	TryAcquire(ctx context.Context, key string, wait, lease time.Duration) (*Guard, error)
	// Release 只刪除自己持有的鎖；鎖已不屬於自己時回傳 ErrLeaseLost
	Release(ctx context.Context, guard *Guard) error
}

// compare-and-delete
var releaseScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
  return redis.call('DEL', KEYS[1])
end
return 0
`)

type RedisLockerImpl struct {
	client       *redis.Client
	clock        clock.Clock
	pollInterval time.Duration
}

func NewRedisLocker(client *redis.Client, clk clock.Clock) Locker {
	return &RedisLockerImpl{
		client:       client,
		clock:        clk,
		pollInterval: defaultPollInterval,
	}
}

func (l *RedisLockerImpl) TryAcquire(ctx context.Context, key string, wait, lease time.Duration) (*Guard, error) {
	value := uuid.NewString()
	deadline := time.Now().Add(wait)

	for {
		ok, err := l.client.SetNX(ctx, key, value, lease).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if ok {
			return &Guard{Key: key, Value: value, ExpiresAt: l.clock.Now().Add(lease)}, nil
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, apperrors.ErrLockNotAcquired
		}

		sleep := l.pollInterval
		if remaining < sleep {
			sleep = remaining
		}
		timer := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func (l *RedisLockerImpl) Release(ctx context.Context, guard *Guard) error {
	if guard == nil {
		return nil
	}

	n, err := releaseScript.Run(ctx, l.client, []string{guard.Key}, guard.Value).Int64()
	if err != nil {
		return fmt.Errorf("failed to release lock %s: %w", guard.Key, err)
	}
	if n == 0 {
		return ErrLeaseLost
	}
	return nil
}
