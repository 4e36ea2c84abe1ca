package reconciler_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	admissionMocks "go-gin-concert-booking/internal/admission/mocks"
	"go-gin-concert-booking/internal/reconciler"
	serviceMocks "go-gin-concert-booking/internal/service/mocks"
	apperrors "go-gin-concert-booking/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, cfg reconciler.Config) (*reconciler.ReconcilerImpl, *admissionMocks.MockAdmissionQueue, *serviceMocks.MockSeatInventory) {
	queue := admissionMocks.NewMockAdmissionQueue(t)
	inventory := serviceMocks.NewMockSeatInventory(t)
	return reconciler.NewReconciler(queue, inventory, cfg), queue, inventory
}

func TestReconciler_ActivationTick(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		active int64
		want   int
	}{
		{"Full batch", 0, 10},
		{"Capacity left below batch", 95, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, queue, _ := setup(t, reconciler.DefaultConfig())

			queue.EXPECT().ActiveCount(ctx).Return(tt.active, nil).Once()
			queue.EXPECT().ActivateBatch(ctx, tt.want).Return(tt.want, nil).Once()

			require.NoError(t, r.ActivationTick(ctx))
		})
	}

	t.Run("At capacity skips activation", func(t *testing.T) {
		r, queue, _ := setup(t, reconciler.DefaultConfig())

		queue.EXPECT().ActiveCount(ctx).Return(int64(100), nil).Once()

		require.NoError(t, r.ActivationTick(ctx))
	})

	t.Run("Count failure is returned", func(t *testing.T) {
		r, queue, _ := setup(t, reconciler.DefaultConfig())

		queue.EXPECT().ActiveCount(ctx).Return(int64(0), errors.New("redis down")).Once()

		assert.Error(t, r.ActivationTick(ctx))
	})
}

func TestReconciler_ExpiryTick(t *testing.T) {
	ctx := context.Background()
	r, queue, _ := setup(t, reconciler.DefaultConfig())

	queue.EXPECT().ReconcileExpired(ctx).Return(3, nil).Once()

	require.NoError(t, r.ExpiryTick(ctx))
}

func TestReconciler_SeatHoldTick(t *testing.T) {
	ctx := context.Background()
	cfg := reconciler.DefaultConfig()

	t.Run("One failing seat does not stop the others", func(t *testing.T) {
		r, _, inventory := setup(t, cfg)

		inventory.EXPECT().ListExpiredHolds(ctx, cfg.HoldWindow, cfg.SeatScanLimit).Return([]int64{1, 2, 3}, nil).Once()
		inventory.EXPECT().RestoreIfExpired(ctx, int64(1), cfg.HoldWindow).Return(true, nil).Once()
		inventory.EXPECT().RestoreIfExpired(ctx, int64(2), cfg.HoldWindow).Return(false, apperrors.ErrLockTimeout).Once()
		inventory.EXPECT().RestoreIfExpired(ctx, int64(3), cfg.HoldWindow).Return(false, nil).Once()

		require.NoError(t, r.SeatHoldTick(ctx))
	})

	t.Run("Nothing to restore", func(t *testing.T) {
		r, _, inventory := setup(t, cfg)

		inventory.EXPECT().ListExpiredHolds(ctx, cfg.HoldWindow, cfg.SeatScanLimit).Return(nil, nil).Once()

		require.NoError(t, r.SeatHoldTick(ctx))
	})
}

func TestReconciler_StartIsolatesFailures(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := reconciler.DefaultConfig()
	cfg.ActivationInterval = 5 * time.Millisecond
	cfg.ExpiryInterval = 5 * time.Millisecond
	cfg.SeatHoldInterval = 5 * time.Millisecond
	r, queue, inventory := setup(t, cfg)

	var activations, expiries, scans atomic.Int32
	queue.EXPECT().ActiveCount(mock.Anything).RunAndReturn(func(context.Context) (int64, error) {
		activations.Add(1)
		return 0, errors.New("redis down")
	}).Maybe()
	queue.EXPECT().ReconcileExpired(mock.Anything).RunAndReturn(func(context.Context) (int, error) {
		expiries.Add(1)
		return 0, nil
	}).Maybe()
	// 第一次掃描 panic，之後的 tick 仍要繼續執行
	inventory.EXPECT().ListExpiredHolds(mock.Anything, cfg.HoldWindow, cfg.SeatScanLimit).RunAndReturn(
		func(context.Context, time.Duration, int) ([]int64, error) {
			if scans.Add(1) == 1 {
				panic("boom")
			}
			return nil, nil
		}).Maybe()

	r.Start(ctx)

	assert.Eventually(t, func() bool {
		return activations.Load() >= 2 && expiries.Load() >= 2 && scans.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	r.Wait()

	stopped := scans.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, scans.Load())
}
