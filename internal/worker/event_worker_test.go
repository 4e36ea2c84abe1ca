package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go-gin-concert-booking/internal/model"
	notifierMocks "go-gin-concert-booking/internal/notifier/mocks"
	"go-gin-concert-booking/internal/queue"
	rankingMocks "go-gin-concert-booking/internal/ranking/mocks"
	"go-gin-concert-booking/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func confirmedEvent() *model.ReservationConfirmedEvent {
	return &model.ReservationConfirmedEvent{
		EventID:       "evt-1",
		ReservationID: 100,
		PaymentID:     55,
		UserID:        1,
		SeatID:        7,
		ScheduleID:    3,
		ConcertID:     2,
		Amount:        5000,
		ConfirmedAt:   time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestEventWorker_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rank := rankingMocks.NewMockRanking(t)
		notify := notifierMocks.NewMockNotifier(t)
		w := worker.NewEventWorker(queue.NewMemoryEventQueue(1), rank, notify).(*worker.EventWorkerImpl)

		rank.EXPECT().Record(ctx, int64(2), "evt-1").Return(true, nil).Once()
		notify.EXPECT().Notify(mock.Anything, confirmedEvent()).Return(nil).Once()

		require.NoError(t, w.Handle(ctx, confirmedEvent()))
	})

	t.Run("Ranking failure skips notification", func(t *testing.T) {
		rank := rankingMocks.NewMockRanking(t)
		notify := notifierMocks.NewMockNotifier(t)
		w := worker.NewEventWorker(queue.NewMemoryEventQueue(1), rank, notify).(*worker.EventWorkerImpl)

		rank.EXPECT().Record(ctx, int64(2), "evt-1").Return(false, errors.New("redis down")).Once()

		assert.Error(t, w.Handle(ctx, confirmedEvent()))
	})

	t.Run("Duplicate event still notifies", func(t *testing.T) {
		rank := rankingMocks.NewMockRanking(t)
		notify := notifierMocks.NewMockNotifier(t)
		w := worker.NewEventWorker(queue.NewMemoryEventQueue(1), rank, notify).(*worker.EventWorkerImpl)

		rank.EXPECT().Record(ctx, int64(2), "evt-1").Return(false, nil).Once()
		notify.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Once()

		require.NoError(t, w.Handle(ctx, confirmedEvent()))
	})
}

func TestEventWorker_Integration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// 1. 準備：Memory Queue 與 mock
	q := queue.NewMemoryEventQueue(10)
	rank := rankingMocks.NewMockRanking(t)
	notify := notifierMocks.NewMockNotifier(t)

	var attempts atomic.Int32
	done := make(chan struct{})
	rank.EXPECT().Record(mock.Anything, int64(2), "evt-1").Return(true, nil).Times(2)
	// 第一次通知失敗，事件重回隊列後第二次成功
	notify.EXPECT().Notify(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, event *model.ReservationConfirmedEvent) error {
			if attempts.Add(1) == 1 {
				return errors.New("webhook 502")
			}
			close(done)
			return nil
		}).Times(2)

	// 2. 啟動 Worker
	w := worker.NewEventWorker(q, rank, notify)
	require.NoError(t, w.Start(ctx))

	// 3. 執行
	require.NoError(t, q.Publish(ctx, confirmedEvent()))

	// 4. 驗證
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("超時！Worker 沒有在時間內處理事件")
	}

	cancel()
	w.Wait()
	assert.Equal(t, int32(2), attempts.Load())
}
