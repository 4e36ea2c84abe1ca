package service_test

import (
	"context"
	"testing"
	"time"

	"go-gin-concert-booking/internal/database"
	"go-gin-concert-booking/internal/model"
	apperrors "go-gin-concert-booking/pkg/app_errors"
	"go-gin-concert-booking/pkg/clock"
	"go-gin-concert-booking/pkg/retry"

	"github.com/jackc/pgx/v5"
)

var testNow = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

// fakeTxManager 直接執行 fn，交易本身以 nil 代替，由 repository mock 忽略
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	m.calls++
	return database.TranslateError(fn(nil))
}

func testRetryPolicy() retry.Policy {
	return retry.Policy{
		MaxAttempts: 3,
		Backoff:     retry.Constant(time.Millisecond),
		IsRetryable: apperrors.IsRetryable,
	}
}

func testClock(t *testing.T) *clock.FakeClock {
	t.Helper()
	return clock.Fake(testNow)
}

func openSchedule() *model.ConcertSchedule {
	return &model.ConcertSchedule{
		ID:                 3,
		ConcertID:          2,
		ConcertAt:          testNow.Add(30 * 24 * time.Hour),
		ReservationOpenAt:  testNow.Add(-time.Hour),
		ReservationCloseAt: testNow.Add(24 * time.Hour),
	}
}
