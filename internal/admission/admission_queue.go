// Package admission implements the Redis-backed admission queue: a FIFO
// waiting set, a capacity-bounded active set and one token hash per user.
//
// Layout (all keys share the {queue} hash tag so scripts stay in one slot):
//
//	{queue}:waiting        ZSET user_id -> enqueue sequence
//	{queue}:active         ZSET user_id -> expires_at (ms)
//	{queue}:seq            STRING monotonically increasing enqueue sequence
//	{queue}:token:<user>   HASH token, status, created_at, activated_at, expires_at
//	{queue}:index:<token>  STRING user_id
package admission

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"go-gin-concert-booking/internal/model"
	apperrors "go-gin-concert-booking/pkg/app_errors"
	"go-gin-concert-booking/pkg/clock"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	waitingKey     = "{queue}:waiting"
	activeKey      = "{queue}:active"
	seqKey         = "{queue}:seq"
	tokenKeyPrefix = "{queue}:token:"
	indexKeyPrefix = "{queue}:index:"
)

func tokenKey(userID int64) string {
	return fmt.Sprintf("%s%d", tokenKeyPrefix, userID)
}

func indexKey(token string) string {
	return indexKeyPrefix + token
}

type AdmissionQueue interface {
	// IssueToken 已持有 WAITING/ACTIVE 令牌時原樣返回，否則排入等待集合尾端
	IssueToken(ctx context.Context, userID int64) (*model.QueueToken, error)
	// GetStatus WAITING 時即時計算排名，ACTIVE 時 position 為 0
	GetStatus(ctx context.Context, token string) (*model.QueueToken, error)
	// ValidateActive 只有 ACTIVE 且未過期才成功；過期的會被轉為 EXPIRED
	ValidateActive(ctx context.Context, token string) (*model.QueueToken, error)
	// ActivateBatch 原子地啟用最多 min(n, MaxActive-目前活躍數) 個最早排隊者
	ActivateBatch(ctx context.Context, n int) (int, error)
	Release(ctx context.Context, token string) error
	ReconcileExpired(ctx context.Context) (int, error)
	ActiveCount(ctx context.Context) (int64, error)
	WaitingCount(ctx context.Context) (int64, error)
}

type Config struct {
	MaxActive        int
	ActiveTTL        time.Duration
	WaitingTTL       time.Duration
	ExpiredRetention time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxActive:        100,
		ActiveTTL:        10 * time.Minute,
		WaitingTTL:       6 * time.Hour,
		ExpiredRetention: 10 * time.Minute,
	}
}

type RedisAdmissionQueueImpl struct {
	client *redis.Client
	clock  clock.Clock
	cfg    Config
}

func NewRedisAdmissionQueue(client *redis.Client, clk clock.Clock, cfg Config) AdmissionQueue {
	def := DefaultConfig()
	if cfg.MaxActive <= 0 {
		cfg.MaxActive = def.MaxActive
	}
	if cfg.ActiveTTL <= 0 {
		cfg.ActiveTTL = def.ActiveTTL
	}
	if cfg.WaitingTTL <= 0 {
		cfg.WaitingTTL = def.WaitingTTL
	}
	if cfg.ExpiredRetention <= 0 {
		cfg.ExpiredRetention = def.ExpiredRetention
	}
	return &RedisAdmissionQueueImpl{client: client, clock: clk, cfg: cfg}
}

func (q *RedisAdmissionQueueImpl) IssueToken(ctx context.Context, userID int64) (*model.QueueToken, error) {
	token := uuid.NewString()
	keys := []string{waitingKey, activeKey, seqKey, tokenKey(userID), indexKey(token)}

	res, err := issueScript.Run(ctx, q.client, keys,
		userID, token, msString(q.clock.Now()), seconds(q.cfg.WaitingTTL), indexKeyPrefix,
	).Slice()
	if err != nil {
		return nil, fmt.Errorf("failed to issue queue token: %w", err)
	}
	if len(res) != 6 {
		return nil, fmt.Errorf("unexpected issue result length %d", len(res))
	}

	qt := parseToken(userID, res[0], res[1], res[2], res[3], res[4])
	qt.Position = positionOf(qt.Status, toInt64(res[5]))
	return qt, nil
}

func (q *RedisAdmissionQueueImpl) GetStatus(ctx context.Context, token string) (*model.QueueToken, error) {
	res, err := statusScript.Run(ctx, q.client,
		[]string{indexKey(token), waitingKey},
		tokenKeyPrefix, token,
	).Slice()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get queue status: %w", err)
	}
	if len(res) != 6 {
		return nil, fmt.Errorf("unexpected status result length %d", len(res))
	}

	userID, _ := strconv.ParseInt(toString(res[0]), 10, 64)
	qt := parseToken(userID, token, res[1], res[2], res[3], res[4])
	// 尚未被排程器回收的過期令牌，對外一律視為 EXPIRED
	if qt.Status == model.TokenStatusActive && qt.ExpiresAt != nil && !q.clock.Now().Before(*qt.ExpiresAt) {
		qt.Status = model.TokenStatusExpired
	}
	qt.Position = positionOf(qt.Status, toInt64(res[5]))
	return qt, nil
}

func (q *RedisAdmissionQueueImpl) ValidateActive(ctx context.Context, token string) (*model.QueueToken, error) {
	res, err := validateScript.Run(ctx, q.client,
		[]string{indexKey(token), activeKey},
		tokenKeyPrefix, token, msString(q.clock.Now()), seconds(q.cfg.ExpiredRetention),
	).Slice()
	if err != nil {
		return nil, fmt.Errorf("failed to validate queue token: %w", err)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("unexpected validate result")
	}

	switch toInt64(res[0]) {
	case 1:
		userID, _ := strconv.ParseInt(toString(res[1]), 10, 64)
		qt := parseToken(userID, token, string(model.TokenStatusActive), res[2], res[3], res[4])
		return qt, nil
	case -1:
		return nil, apperrors.ErrTokenNotFound
	case -2:
		if len(res) > 2 && toString(res[2]) == string(model.TokenStatusExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenNotActive
	case -3:
		return nil, apperrors.ErrTokenExpired
	default:
		return nil, fmt.Errorf("unexpected validate code %v", res[0])
	}
}

func (q *RedisAdmissionQueueImpl) ActivateBatch(ctx context.Context, n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	now := q.clock.Now()
	expiresAt := now.Add(q.cfg.ActiveTTL)

	res, err := activateScript.Run(ctx, q.client,
		[]string{waitingKey, activeKey},
		n, q.cfg.MaxActive, msString(now), msString(expiresAt),
		tokenKeyPrefix, seconds(q.cfg.ActiveTTL+q.cfg.ExpiredRetention), indexKeyPrefix,
	).Slice()
	if err != nil {
		return 0, fmt.Errorf("failed to activate batch: %w", err)
	}

	return len(res), nil
}

func (q *RedisAdmissionQueueImpl) Release(ctx context.Context, token string) error {
	err := releaseScript.Run(ctx, q.client,
		[]string{indexKey(token), activeKey, waitingKey},
		tokenKeyPrefix, token, seconds(q.cfg.ExpiredRetention),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to release queue token: %w", err)
	}
	return nil
}

func (q *RedisAdmissionQueueImpl) ReconcileExpired(ctx context.Context) (int, error) {
	n, err := reconcileScript.Run(ctx, q.client,
		[]string{activeKey},
		msString(q.clock.Now()), tokenKeyPrefix, seconds(q.cfg.ExpiredRetention), indexKeyPrefix,
	).Int()
	if err != nil {
		return 0, fmt.Errorf("failed to reconcile expired tokens: %w", err)
	}
	return n, nil
}

func (q *RedisAdmissionQueueImpl) ActiveCount(ctx context.Context) (int64, error) {
	return q.client.ZCard(ctx, activeKey).Result()
}

func (q *RedisAdmissionQueueImpl) WaitingCount(ctx context.Context) (int64, error) {
	return q.client.ZCard(ctx, waitingKey).Result()
}

func parseToken(userID int64, token, status, createdAt, activatedAt, expiresAt interface{}) *model.QueueToken {
	qt := &model.QueueToken{
		UserID:    userID,
		Token:     toString(token),
		Status:    model.TokenStatus(toString(status)),
		CreatedAt: fromMs(toString(createdAt)),
	}
	if t := fromMs(toString(activatedAt)); !t.IsZero() {
		qt.ActivatedAt = &t
	}
	if t := fromMs(toString(expiresAt)); !t.IsZero() {
		qt.ExpiresAt = &t
	}
	return qt
}

// positionOf WAITING 排名從 1 起算，其他狀態為 0
func positionOf(status model.TokenStatus, rank int64) int64 {
	if status != model.TokenStatusWaiting {
		return 0
	}
	if rank < 0 {
		rank = 0
	}
	return rank + 1
}

func msString(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func fromMs(s string) time.Time {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil || ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

func seconds(d time.Duration) int64 {
	return int64(math.Max(1, math.Ceil(d.Seconds())))
}

func toString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case int64:
		return strconv.FormatInt(s, 10)
	default:
		return ""
	}
}

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case string:
		i, _ := strconv.ParseInt(n, 10, 64)
		return i
	default:
		return 0
	}
}
