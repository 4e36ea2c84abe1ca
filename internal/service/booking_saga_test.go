package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	admissionMocks "go-gin-concert-booking/internal/admission/mocks"
	"go-gin-concert-booking/internal/model"
	repoMocks "go-gin-concert-booking/internal/repository/mocks"
	"go-gin-concert-booking/internal/service"
	serviceMocks "go-gin-concert-booking/internal/service/mocks"
	apperrors "go-gin-concert-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sagaMocks struct {
	tx              *fakeTxManager
	queue           *admissionMocks.MockAdmissionQueue
	inventory       *serviceMocks.MockSeatInventory
	seatRepo        *repoMocks.MockSeatRepository
	concertRepo     *repoMocks.MockConcertRepository
	reservationRepo *repoMocks.MockReservationRepository
}

func setupSaga(t *testing.T) (service.BookingSaga, *sagaMocks) {
	m := &sagaMocks{
		tx:              &fakeTxManager{},
		queue:           admissionMocks.NewMockAdmissionQueue(t),
		inventory:       serviceMocks.NewMockSeatInventory(t),
		seatRepo:        repoMocks.NewMockSeatRepository(t),
		concertRepo:     repoMocks.NewMockConcertRepository(t),
		reservationRepo: repoMocks.NewMockReservationRepository(t),
	}
	saga := service.NewBookingSaga(m.tx, m.queue, m.inventory, m.seatRepo, m.concertRepo, m.reservationRepo,
		testClock(t), holdWindow, testRetryPolicy())
	return saga, m
}

func activeToken(userID int64) *model.QueueToken {
	expires := testNow.Add(10 * time.Minute)
	return &model.QueueToken{UserID: userID, Token: "tok", Status: model.TokenStatusActive, ExpiresAt: &expires}
}

func TestBookingSaga_CreateReservation(t *testing.T) {
	ctx := context.Background()
	req := model.CreateReservationRequest{UserID: 1, ScheduleID: 3, SeatID: 7, Token: "tok"}

	t.Run("Success", func(t *testing.T) {
		saga, m := setupSaga(t)

		m.queue.EXPECT().ValidateActive(ctx, "tok").Return(activeToken(1), nil).Once()
		m.seatRepo.EXPECT().FindByID(ctx, int64(7)).Return(seatWith(model.SeatStatusAvailable, testNow), nil).Once()
		m.concertRepo.EXPECT().FindScheduleByID(ctx, int64(3)).Return(openSchedule(), nil).Once()
		m.inventory.EXPECT().Hold(ctx, mock.Anything, int64(7)).
			Return(seatWith(model.SeatStatusTemporaryReserved, testNow), nil).Once()
		m.reservationRepo.EXPECT().Create(ctx, mock.Anything, mock.MatchedBy(func(r *model.Reservation) bool {
			return r.UserID == 1 && r.SeatID == 7 && r.ScheduleID == 3 &&
				r.Status == model.ReservationStatusTemporary &&
				r.TemporaryReservedAt.Equal(testNow) &&
				r.TemporaryExpiresAt.Equal(testNow.Add(holdWindow))
		})).RunAndReturn(func(ctx context.Context, _ pgx.Tx, r *model.Reservation) (*model.Reservation, error) {
			r.ID = 100
			return r, nil
		}).Once()
		m.queue.EXPECT().Release(ctx, "tok").Return(nil).Once()

		reservation, err := saga.CreateReservation(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, int64(100), reservation.ID)
		assert.Equal(t, model.ReservationStatusTemporary, reservation.Status)
	})

	t.Run("Token release failure does not fail the booking", func(t *testing.T) {
		saga, m := setupSaga(t)

		m.queue.EXPECT().ValidateActive(ctx, "tok").Return(activeToken(1), nil).Once()
		m.seatRepo.EXPECT().FindByID(ctx, int64(7)).Return(seatWith(model.SeatStatusAvailable, testNow), nil).Once()
		m.concertRepo.EXPECT().FindScheduleByID(ctx, int64(3)).Return(openSchedule(), nil).Once()
		m.inventory.EXPECT().Hold(ctx, mock.Anything, int64(7)).Return(seatWith(model.SeatStatusTemporaryReserved, testNow), nil).Once()
		m.reservationRepo.EXPECT().Create(ctx, mock.Anything, mock.Anything).Return(&model.Reservation{ID: 100}, nil).Once()
		m.queue.EXPECT().Release(ctx, "tok").Return(errors.New("redis down")).Once()

		reservation, err := saga.CreateReservation(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(100), reservation.ID)
	})

	t.Run("Failed - ErrTokenExpired", func(t *testing.T) {
		saga, m := setupSaga(t)

		m.queue.EXPECT().ValidateActive(ctx, "tok").Return(nil, apperrors.ErrTokenExpired).Once()

		_, err := saga.CreateReservation(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
		assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))
	})

	t.Run("Failed - ErrTokenNotOwned", func(t *testing.T) {
		saga, m := setupSaga(t)

		m.queue.EXPECT().ValidateActive(ctx, "tok").Return(activeToken(2), nil).Once()

		_, err := saga.CreateReservation(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrTokenNotOwned)
	})

	t.Run("Failed - ErrSeatNotInSchedule", func(t *testing.T) {
		saga, m := setupSaga(t)

		other := seatWith(model.SeatStatusAvailable, testNow)
		other.ScheduleID = 99
		m.queue.EXPECT().ValidateActive(ctx, "tok").Return(activeToken(1), nil).Once()
		m.seatRepo.EXPECT().FindByID(ctx, int64(7)).Return(other, nil).Once()

		_, err := saga.CreateReservation(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrSeatNotInSchedule)
	})

	t.Run("Failed - ErrScheduleClosed", func(t *testing.T) {
		saga, m := setupSaga(t)

		closed := openSchedule()
		closed.ReservationCloseAt = testNow
		m.queue.EXPECT().ValidateActive(ctx, "tok").Return(activeToken(1), nil).Once()
		m.seatRepo.EXPECT().FindByID(ctx, int64(7)).Return(seatWith(model.SeatStatusAvailable, testNow), nil).Once()
		m.concertRepo.EXPECT().FindScheduleByID(ctx, int64(3)).Return(closed, nil).Once()

		_, err := saga.CreateReservation(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrScheduleClosed)
	})

	t.Run("Failed - ErrSeatNotAvailable keeps the token", func(t *testing.T) {
		saga, m := setupSaga(t)

		m.queue.EXPECT().ValidateActive(ctx, "tok").Return(activeToken(1), nil).Once()
		m.seatRepo.EXPECT().FindByID(ctx, int64(7)).Return(seatWith(model.SeatStatusTemporaryReserved, testNow), nil).Once()
		m.concertRepo.EXPECT().FindScheduleByID(ctx, int64(3)).Return(openSchedule(), nil).Once()
		m.inventory.EXPECT().Hold(ctx, mock.Anything, int64(7)).Return(nil, apperrors.ErrSeatNotAvailable).Once()

		_, err := saga.CreateReservation(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrSeatNotAvailable)
		assert.Equal(t, 1, m.tx.calls)
	})

	t.Run("Lock timeout exhausts retries", func(t *testing.T) {
		saga, m := setupSaga(t)

		m.queue.EXPECT().ValidateActive(ctx, "tok").Return(activeToken(1), nil).Once()
		m.seatRepo.EXPECT().FindByID(ctx, int64(7)).Return(seatWith(model.SeatStatusAvailable, testNow), nil).Once()
		m.concertRepo.EXPECT().FindScheduleByID(ctx, int64(3)).Return(openSchedule(), nil).Once()
		m.inventory.EXPECT().Hold(ctx, mock.Anything, int64(7)).Return(nil, apperrors.ErrLockTimeout).Times(3)

		_, err := saga.CreateReservation(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrLockTimeout)
		assert.Equal(t, apperrors.KindConcurrency, apperrors.KindOf(err))
		assert.Equal(t, 3, m.tx.calls)
	})
}

func TestBookingSaga_CancelReservation(t *testing.T) {
	ctx := context.Background()
	temporary := func() *model.Reservation {
		return &model.Reservation{ID: 100, UserID: 1, SeatID: 7, ScheduleID: 3, Status: model.ReservationStatusTemporary}
	}

	t.Run("Success", func(t *testing.T) {
		saga, m := setupSaga(t)

		m.reservationRepo.EXPECT().FindByID(ctx, int64(100)).Return(temporary(), nil).Once()
		m.seatRepo.EXPECT().FindByIDWithLock(ctx, mock.Anything, int64(7)).
			Return(seatWith(model.SeatStatusTemporaryReserved, testNow), nil).Once()
		m.reservationRepo.EXPECT().FindByIDWithLock(ctx, mock.Anything, int64(100)).Return(temporary(), nil).Once()
		m.inventory.EXPECT().Release(ctx, mock.Anything, int64(7)).Return(seatWith(model.SeatStatusAvailable, testNow), nil).Once()
		m.reservationRepo.EXPECT().UpdateStatus(ctx, mock.Anything, int64(100), model.ReservationStatusCanceled, testNow).
			Return(nil).Once()

		reservation, err := saga.CancelReservation(ctx, 100, 1)

		require.NoError(t, err)
		assert.Equal(t, model.ReservationStatusCanceled, reservation.Status)
	})

	t.Run("Failed - ErrReservationNotOwned", func(t *testing.T) {
		saga, m := setupSaga(t)

		m.reservationRepo.EXPECT().FindByID(ctx, int64(100)).Return(temporary(), nil).Once()

		_, err := saga.CancelReservation(ctx, 100, 2)
		assert.ErrorIs(t, err, apperrors.ErrReservationNotOwned)
	})

	t.Run("Failed - confirmed reservation is not cancelable", func(t *testing.T) {
		saga, m := setupSaga(t)

		confirmed := temporary()
		confirmed.Status = model.ReservationStatusConfirmed
		m.reservationRepo.EXPECT().FindByID(ctx, int64(100)).Return(temporary(), nil).Once()
		m.seatRepo.EXPECT().FindByIDWithLock(ctx, mock.Anything, int64(7)).
			Return(seatWith(model.SeatStatusReserved, testNow), nil).Once()
		m.reservationRepo.EXPECT().FindByIDWithLock(ctx, mock.Anything, int64(100)).Return(confirmed, nil).Once()

		_, err := saga.CancelReservation(ctx, 100, 1)
		assert.ErrorIs(t, err, apperrors.ErrReservationNotCancelable)
	})
}
