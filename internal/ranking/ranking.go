// Package ranking keeps a sliding-window count of confirmed reservations per
// concert. Each bucket is one Redis ZSET that expires once it falls out of the
// window, so old events age out without a separate compaction job.
package ranking

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go-gin-concert-booking/internal/model"
	"go-gin-concert-booking/pkg/clock"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	bucketKeyPrefix = "ranking:bucket:"
	seenKeyPrefix   = "ranking:seen:"
	scratchPrefix   = "ranking:top:"
)

type Ranking interface {
	// Record 同一個 eventID 只計一次；返回是否為首次計數
	Record(ctx context.Context, concertID int64, eventID string) (bool, error)
	Top(ctx context.Context, n int) ([]model.ConcertRanking, error)
}

// recordScript
// KEYS: seen, bucket
// ARGV: concert_id, ttl_sec
var recordScript = redis.NewScript(`
if not redis.call('SET', KEYS[1], '1', 'NX', 'EX', ARGV[2]) then
  return 0
end
redis.call('ZINCRBY', KEYS[2], 1, ARGV[1])
redis.call('EXPIRE', KEYS[2], ARGV[2])
return 1
`)

type RedisRankingImpl struct {
	client *redis.Client
	clock  clock.Clock
	window time.Duration
	bucket time.Duration
}

func NewRedisRanking(client *redis.Client, clk clock.Clock, window, bucket time.Duration) Ranking {
	if bucket <= 0 {
		bucket = time.Minute
	}
	if window < bucket {
		window = bucket
	}
	return &RedisRankingImpl{client: client, clock: clk, window: window, bucket: bucket}
}

func (r *RedisRankingImpl) Record(ctx context.Context, concertID int64, eventID string) (bool, error) {
	ttl := int64((r.window + r.bucket).Seconds())
	keys := []string{seenKeyPrefix + eventID, r.bucketKey(r.clock.Now())}

	n, err := recordScript.Run(ctx, r.client, keys, concertID, ttl).Int()
	if err != nil {
		return false, fmt.Errorf("failed to record ranking: %w", err)
	}
	return n == 1, nil
}

func (r *RedisRankingImpl) Top(ctx context.Context, n int) ([]model.ConcertRanking, error) {
	if n <= 0 {
		return []model.ConcertRanking{}, nil
	}

	keys := r.windowKeys(r.clock.Now())
	scratch := scratchPrefix + uuid.NewString()

	var ranged *redis.ZSliceCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZUnionStore(ctx, scratch, &redis.ZStore{Keys: keys, Aggregate: "SUM"})
		ranged = pipe.ZRevRangeWithScores(ctx, scratch, 0, int64(n-1))
		pipe.Del(ctx, scratch)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read ranking: %w", err)
	}

	rankings := make([]model.ConcertRanking, 0, len(ranged.Val()))
	for _, z := range ranged.Val() {
		member, _ := z.Member.(string)
		concertID, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			continue
		}
		rankings = append(rankings, model.ConcertRanking{
			ConcertID:    concertID,
			Reservations: int64(z.Score),
		})
	}
	return rankings, nil
}

func (r *RedisRankingImpl) bucketKey(t time.Time) string {
	return bucketKeyPrefix + strconv.FormatInt(t.Truncate(r.bucket).Unix(), 10)
}

// windowKeys 由新到舊列出視窗內所有 bucket
func (r *RedisRankingImpl) windowKeys(now time.Time) []string {
	count := int(r.window / r.bucket)
	if count < 1 {
		count = 1
	}
	keys := make([]string, 0, count)
	current := now.Truncate(r.bucket)
	for i := 0; i < count; i++ {
		keys = append(keys, r.bucketKey(current.Add(-time.Duration(i)*r.bucket)))
	}
	return keys
}
