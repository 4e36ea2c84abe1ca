package service_test

import (
	"context"
	"testing"
	"time"

	"go-gin-concert-booking/internal/model"
	repoMocks "go-gin-concert-booking/internal/repository/mocks"
	"go-gin-concert-booking/internal/service"
	apperrors "go-gin-concert-booking/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const holdWindow = 5 * time.Minute

func setupInventory(t *testing.T) (service.SeatInventory, *repoMocks.MockSeatRepository, *repoMocks.MockReservationRepository) {
	seatRepo := repoMocks.NewMockSeatRepository(t)
	reservationRepo := repoMocks.NewMockReservationRepository(t)
	inventory := service.NewSeatInventory(&fakeTxManager{}, seatRepo, reservationRepo, testClock(t))
	return inventory, seatRepo, reservationRepo
}

func seatWith(status model.SeatStatus, updatedAt time.Time) *model.Seat {
	return &model.Seat{ID: 7, ScheduleID: 3, SeatNumber: 7, Status: status, Price: 5000, UpdatedAt: updatedAt}
}

func TestSeatInventory_Hold(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		inventory, seatRepo, _ := setupInventory(t)

		seatRepo.EXPECT().FindByIDWithLock(ctx, mock.Anything, int64(7)).
			Return(seatWith(model.SeatStatusAvailable, testNow.Add(-time.Hour)), nil).Once()
		seatRepo.EXPECT().UpdateStatus(ctx, mock.Anything, int64(7), model.SeatStatusTemporaryReserved, testNow).
			Return(nil).Once()

		seat, err := inventory.Hold(ctx, nil, 7)

		require.NoError(t, err)
		assert.Equal(t, model.SeatStatusTemporaryReserved, seat.Status)
		assert.Equal(t, testNow, seat.UpdatedAt)
	})

	for _, status := range []model.SeatStatus{model.SeatStatusTemporaryReserved, model.SeatStatusReserved} {
		t.Run("Failed - ErrSeatNotAvailable when "+string(status), func(t *testing.T) {
			inventory, seatRepo, _ := setupInventory(t)

			seatRepo.EXPECT().FindByIDWithLock(ctx, mock.Anything, int64(7)).
				Return(seatWith(status, testNow), nil).Once()

			_, err := inventory.Hold(ctx, nil, 7)
			assert.ErrorIs(t, err, apperrors.ErrSeatNotAvailable)
		})
	}

	t.Run("Failed - ErrSeatNotFound", func(t *testing.T) {
		inventory, seatRepo, _ := setupInventory(t)

		seatRepo.EXPECT().FindByIDWithLock(ctx, mock.Anything, int64(7)).Return(nil, apperrors.ErrSeatNotFound).Once()

		_, err := inventory.Hold(ctx, nil, 7)
		assert.ErrorIs(t, err, apperrors.ErrSeatNotFound)
	})
}

func TestSeatInventory_Confirm(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		inventory, seatRepo, _ := setupInventory(t)

		seatRepo.EXPECT().FindByIDWithLock(ctx, mock.Anything, int64(7)).
			Return(seatWith(model.SeatStatusTemporaryReserved, testNow), nil).Once()
		seatRepo.EXPECT().UpdateStatus(ctx, mock.Anything, int64(7), model.SeatStatusReserved, testNow).
			Return(nil).Once()

		seat, err := inventory.Confirm(ctx, nil, 7)
		require.NoError(t, err)
		assert.Equal(t, model.SeatStatusReserved, seat.Status)
	})

	t.Run("Failed - ErrInvalidSeatStatus", func(t *testing.T) {
		inventory, seatRepo, _ := setupInventory(t)

		seatRepo.EXPECT().FindByIDWithLock(ctx, mock.Anything, int64(7)).
			Return(seatWith(model.SeatStatusAvailable, testNow), nil).Once()

		_, err := inventory.Confirm(ctx, nil, 7)
		assert.ErrorIs(t, err, apperrors.ErrInvalidSeatStatus)
	})
}

func TestSeatInventory_Release(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		inventory, seatRepo, _ := setupInventory(t)

		seatRepo.EXPECT().FindByIDWithLock(ctx, mock.Anything, int64(7)).
			Return(seatWith(model.SeatStatusTemporaryReserved, testNow), nil).Once()
		seatRepo.EXPECT().UpdateStatus(ctx, mock.Anything, int64(7), model.SeatStatusAvailable, testNow).
			Return(nil).Once()

		seat, err := inventory.Release(ctx, nil, 7)
		require.NoError(t, err)
		assert.Equal(t, model.SeatStatusAvailable, seat.Status)
	})

	t.Run("Reserved seat cannot be released", func(t *testing.T) {
		inventory, seatRepo, _ := setupInventory(t)

		seatRepo.EXPECT().FindByIDWithLock(ctx, mock.Anything, int64(7)).
			Return(seatWith(model.SeatStatusReserved, testNow), nil).Once()

		_, err := inventory.Release(ctx, nil, 7)
		assert.ErrorIs(t, err, apperrors.ErrInvalidSeatStatus)
	})
}

func TestSeatInventory_RestoreIfExpired(t *testing.T) {
	ctx := context.Background()

	t.Run("Expired hold is restored and its reservation canceled", func(t *testing.T) {
		inventory, seatRepo, reservationRepo := setupInventory(t)

		seatRepo.EXPECT().FindByIDWithLock(ctx, mock.Anything, int64(7)).
			Return(seatWith(model.SeatStatusTemporaryReserved, testNow.Add(-holdWindow-time.Second)), nil).Once()
		seatRepo.EXPECT().UpdateStatus(ctx, mock.Anything, int64(7), model.SeatStatusAvailable, testNow).
			Return(nil).Once()
		reservationRepo.EXPECT().CancelTemporaryBySeat(ctx, mock.Anything, int64(7), testNow).Return(int64(1), nil).Once()

		restored, err := inventory.RestoreIfExpired(ctx, 7, holdWindow)
		require.NoError(t, err)
		assert.True(t, restored)
	})

	t.Run("Hold still inside window is kept", func(t *testing.T) {
		inventory, seatRepo, _ := setupInventory(t)

		seatRepo.EXPECT().FindByIDWithLock(ctx, mock.Anything, int64(7)).
			Return(seatWith(model.SeatStatusTemporaryReserved, testNow.Add(-holdWindow)), nil).Once()

		restored, err := inventory.RestoreIfExpired(ctx, 7, holdWindow)
		require.NoError(t, err)
		assert.False(t, restored)
	})

	t.Run("Seat paid in the meantime is kept", func(t *testing.T) {
		inventory, seatRepo, _ := setupInventory(t)

		seatRepo.EXPECT().FindByIDWithLock(ctx, mock.Anything, int64(7)).
			Return(seatWith(model.SeatStatusReserved, testNow.Add(-time.Hour)), nil).Once()

		restored, err := inventory.RestoreIfExpired(ctx, 7, holdWindow)
		require.NoError(t, err)
		assert.False(t, restored)
	})
}

func TestSeatInventory_ListExpiredHolds(t *testing.T) {
	inventory, seatRepo, _ := setupInventory(t)
	ctx := context.Background()

	seatRepo.EXPECT().ListExpiredHolds(ctx, testNow.Add(-holdWindow), 100).Return([]int64{1, 2}, nil).Once()

	ids, err := inventory.ListExpiredHolds(ctx, holdWindow, 100)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)
}
