package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	admissionMocks "go-gin-concert-booking/internal/admission/mocks"
	"go-gin-concert-booking/internal/lock"
	lockMocks "go-gin-concert-booking/internal/lock/mocks"
	"go-gin-concert-booking/internal/model"
	queueMocks "go-gin-concert-booking/internal/queue/mocks"
	repoMocks "go-gin-concert-booking/internal/repository/mocks"
	"go-gin-concert-booking/internal/service"
	serviceMocks "go-gin-concert-booking/internal/service/mocks"
	apperrors "go-gin-concert-booking/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const paymentLockKey = "lock:payment:reservation:100"

type paymentMocks struct {
	tx              *fakeTxManager
	locker          *lockMocks.MockLocker
	queue           *admissionMocks.MockAdmissionQueue
	ledger          *serviceMocks.MockPointLedger
	inventory       *serviceMocks.MockSeatInventory
	seatRepo        *repoMocks.MockSeatRepository
	concertRepo     *repoMocks.MockConcertRepository
	reservationRepo *repoMocks.MockReservationRepository
	paymentRepo     *repoMocks.MockPaymentRepository
	publisher       *queueMocks.MockEventPublisher
}

func setupPayment(t *testing.T) (service.PaymentOrchestrator, *paymentMocks) {
	m := &paymentMocks{
		tx:              &fakeTxManager{},
		locker:          lockMocks.NewMockLocker(t),
		queue:           admissionMocks.NewMockAdmissionQueue(t),
		ledger:          serviceMocks.NewMockPointLedger(t),
		inventory:       serviceMocks.NewMockSeatInventory(t),
		seatRepo:        repoMocks.NewMockSeatRepository(t),
		concertRepo:     repoMocks.NewMockConcertRepository(t),
		reservationRepo: repoMocks.NewMockReservationRepository(t),
		paymentRepo:     repoMocks.NewMockPaymentRepository(t),
		publisher:       queueMocks.NewMockEventPublisher(t),
	}
	orchestrator := service.NewPaymentOrchestrator(
		m.tx, m.locker, m.queue, m.ledger, m.inventory,
		m.seatRepo, m.concertRepo, m.reservationRepo, m.paymentRepo, m.publisher,
		testClock(t),
		service.PaymentConfig{LockWait: 3 * time.Second, LockLease: 5 * time.Second},
		testRetryPolicy(),
	)
	return orchestrator, m
}

func pendingReservation() *model.Reservation {
	return &model.Reservation{
		ID:                  100,
		UserID:              1,
		SeatID:              7,
		ScheduleID:          3,
		Status:              model.ReservationStatusTemporary,
		TemporaryReservedAt: testNow.Add(-time.Minute),
		TemporaryExpiresAt:  testNow.Add(4 * time.Minute),
	}
}

func guard() *lock.Guard {
	return &lock.Guard{Key: paymentLockKey, Value: "owner", ExpiresAt: testNow.Add(5 * time.Second)}
}

// expectPrecheck 鎖外的唯讀檢查
func (m *paymentMocks) expectPrecheck(ctx context.Context, r *model.Reservation) {
	m.reservationRepo.EXPECT().FindByID(ctx, int64(100)).Return(r, nil).Once()
	m.seatRepo.EXPECT().FindByID(ctx, int64(7)).Return(seatWith(model.SeatStatusTemporaryReserved, testNow), nil).Once()
	m.concertRepo.EXPECT().FindScheduleByID(ctx, int64(3)).Return(openSchedule(), nil).Once()
}

func (m *paymentMocks) expectLockedReservation(ctx context.Context, r *model.Reservation) {
	m.seatRepo.EXPECT().FindByIDWithLock(ctx, mock.Anything, int64(7)).
		Return(seatWith(model.SeatStatusTemporaryReserved, testNow), nil).Once()
	m.reservationRepo.EXPECT().FindByIDWithLock(ctx, mock.Anything, int64(100)).Return(r, nil).Once()
}

func TestPaymentOrchestrator_ProcessPayment(t *testing.T) {
	ctx := context.Background()
	req := model.ProcessPaymentRequest{UserID: 1, ReservationID: 100, Token: "tok"}

	t.Run("Success", func(t *testing.T) {
		orchestrator, m := setupPayment(t)

		m.expectPrecheck(ctx, pendingReservation())
		m.locker.EXPECT().TryAcquire(ctx, paymentLockKey, 3*time.Second, 5*time.Second).Return(guard(), nil).Once()
		m.expectLockedReservation(ctx, pendingReservation())
		m.paymentRepo.EXPECT().ExistsByReservationID(ctx, mock.Anything, int64(100)).Return(false, nil).Once()
		m.ledger.EXPECT().UseTx(ctx, mock.Anything, int64(1), int64(5000)).
			Return(&model.PointAccount{UserID: 1, Balance: 0}, nil).Once()
		m.paymentRepo.EXPECT().Create(ctx, mock.Anything, &model.Payment{
			ReservationID: 100, UserID: 1, Amount: 5000, PaidAt: testNow,
		}).Return(&model.Payment{ID: 55, ReservationID: 100, UserID: 1, Amount: 5000, PaidAt: testNow}, nil).Once()
		m.inventory.EXPECT().Confirm(ctx, mock.Anything, int64(7)).Return(seatWith(model.SeatStatusReserved, testNow), nil).Once()
		m.reservationRepo.EXPECT().UpdateStatus(ctx, mock.Anything, int64(100), model.ReservationStatusConfirmed, testNow).
			Return(nil).Once()
		m.locker.EXPECT().Release(mock.Anything, mock.Anything).Return(nil).Once()
		m.queue.EXPECT().Release(ctx, "tok").Return(nil).Once()
		m.publisher.EXPECT().Publish(ctx, mock.MatchedBy(func(e *model.ReservationConfirmedEvent) bool {
			return e.ReservationID == 100 && e.PaymentID == 55 && e.ConcertID == 2 && e.Amount == 5000 && e.EventID != ""
		})).Return(nil).Once()

		payment, err := orchestrator.ProcessPayment(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, int64(55), payment.ID)
		assert.Equal(t, int64(5000), payment.Amount)
		assert.Equal(t, 1, m.tx.calls)
	})

	t.Run("Best-effort steps never fail the payment", func(t *testing.T) {
		orchestrator, m := setupPayment(t)

		m.expectPrecheck(ctx, pendingReservation())
		m.locker.EXPECT().TryAcquire(ctx, paymentLockKey, 3*time.Second, 5*time.Second).Return(guard(), nil).Once()
		m.expectLockedReservation(ctx, pendingReservation())
		m.paymentRepo.EXPECT().ExistsByReservationID(ctx, mock.Anything, int64(100)).Return(false, nil).Once()
		m.ledger.EXPECT().UseTx(ctx, mock.Anything, int64(1), int64(5000)).Return(&model.PointAccount{}, nil).Once()
		m.paymentRepo.EXPECT().Create(ctx, mock.Anything, mock.Anything).Return(&model.Payment{ID: 55, Amount: 5000}, nil).Once()
		m.inventory.EXPECT().Confirm(ctx, mock.Anything, int64(7)).Return(&model.Seat{}, nil).Once()
		m.reservationRepo.EXPECT().UpdateStatus(ctx, mock.Anything, int64(100), model.ReservationStatusConfirmed, testNow).Return(nil).Once()
		m.locker.EXPECT().Release(mock.Anything, mock.Anything).Return(lock.ErrLeaseLost).Once()
		m.queue.EXPECT().Release(ctx, "tok").Return(errors.New("redis down")).Once()
		m.publisher.EXPECT().Publish(ctx, mock.Anything).Return(apperrors.ErrPublisherBusy).Once()

		payment, err := orchestrator.ProcessPayment(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, int64(55), payment.ID)
	})

	t.Run("Failed - ErrReservationAlreadyConfirmed before locking", func(t *testing.T) {
		orchestrator, m := setupPayment(t)

		confirmed := pendingReservation()
		confirmed.Status = model.ReservationStatusConfirmed
		m.reservationRepo.EXPECT().FindByID(ctx, int64(100)).Return(confirmed, nil).Once()

		_, err := orchestrator.ProcessPayment(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrReservationAlreadyConfirmed)
		assert.Equal(t, apperrors.KindBusinessRule, apperrors.KindOf(err))
	})

	t.Run("Failed - ErrReservationNotOwned", func(t *testing.T) {
		orchestrator, m := setupPayment(t)

		m.reservationRepo.EXPECT().FindByID(ctx, int64(100)).Return(pendingReservation(), nil).Once()

		_, err := orchestrator.ProcessPayment(ctx, model.ProcessPaymentRequest{UserID: 2, ReservationID: 100})
		assert.ErrorIs(t, err, apperrors.ErrReservationNotOwned)
	})

	t.Run("Failed - ErrReservationExpired", func(t *testing.T) {
		orchestrator, m := setupPayment(t)

		expired := pendingReservation()
		expired.TemporaryExpiresAt = testNow
		m.reservationRepo.EXPECT().FindByID(ctx, int64(100)).Return(expired, nil).Once()

		_, err := orchestrator.ProcessPayment(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrReservationExpired)
	})

	t.Run("Revalidation inside the lock catches a concurrent payment", func(t *testing.T) {
		orchestrator, m := setupPayment(t)

		confirmed := pendingReservation()
		confirmed.Status = model.ReservationStatusConfirmed
		m.expectPrecheck(ctx, pendingReservation())
		m.locker.EXPECT().TryAcquire(ctx, paymentLockKey, 3*time.Second, 5*time.Second).Return(guard(), nil).Once()
		m.expectLockedReservation(ctx, confirmed)
		m.locker.EXPECT().Release(mock.Anything, mock.Anything).Return(nil).Once()

		_, err := orchestrator.ProcessPayment(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrReservationAlreadyConfirmed)
	})

	t.Run("Failed - ErrAlreadyPaid", func(t *testing.T) {
		orchestrator, m := setupPayment(t)

		m.expectPrecheck(ctx, pendingReservation())
		m.locker.EXPECT().TryAcquire(ctx, paymentLockKey, 3*time.Second, 5*time.Second).Return(guard(), nil).Once()
		m.expectLockedReservation(ctx, pendingReservation())
		m.paymentRepo.EXPECT().ExistsByReservationID(ctx, mock.Anything, int64(100)).Return(true, nil).Once()
		m.locker.EXPECT().Release(mock.Anything, mock.Anything).Return(nil).Once()

		_, err := orchestrator.ProcessPayment(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyPaid)
	})

	t.Run("Failed - ErrInsufficientBalance rolls back", func(t *testing.T) {
		orchestrator, m := setupPayment(t)

		m.expectPrecheck(ctx, pendingReservation())
		m.locker.EXPECT().TryAcquire(ctx, paymentLockKey, 3*time.Second, 5*time.Second).Return(guard(), nil).Once()
		m.expectLockedReservation(ctx, pendingReservation())
		m.paymentRepo.EXPECT().ExistsByReservationID(ctx, mock.Anything, int64(100)).Return(false, nil).Once()
		m.ledger.EXPECT().UseTx(ctx, mock.Anything, int64(1), int64(5000)).Return(nil, apperrors.ErrInsufficientBalance).Once()
		m.locker.EXPECT().Release(mock.Anything, mock.Anything).Return(nil).Once()

		_, err := orchestrator.ProcessPayment(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)
	})

	t.Run("Lock contention is retried then succeeds", func(t *testing.T) {
		orchestrator, m := setupPayment(t)

		m.expectPrecheck(ctx, pendingReservation())
		m.locker.EXPECT().TryAcquire(ctx, paymentLockKey, 3*time.Second, 5*time.Second).
			Return(nil, apperrors.ErrLockNotAcquired).Once()
		m.locker.EXPECT().TryAcquire(ctx, paymentLockKey, 3*time.Second, 5*time.Second).Return(guard(), nil).Once()
		m.expectLockedReservation(ctx, pendingReservation())
		m.paymentRepo.EXPECT().ExistsByReservationID(ctx, mock.Anything, int64(100)).Return(false, nil).Once()
		m.ledger.EXPECT().UseTx(ctx, mock.Anything, int64(1), int64(5000)).Return(&model.PointAccount{}, nil).Once()
		m.paymentRepo.EXPECT().Create(ctx, mock.Anything, mock.Anything).Return(&model.Payment{ID: 55}, nil).Once()
		m.inventory.EXPECT().Confirm(ctx, mock.Anything, int64(7)).Return(&model.Seat{}, nil).Once()
		m.reservationRepo.EXPECT().UpdateStatus(ctx, mock.Anything, int64(100), model.ReservationStatusConfirmed, testNow).Return(nil).Once()
		m.locker.EXPECT().Release(mock.Anything, mock.Anything).Return(nil).Once()
		m.queue.EXPECT().Release(ctx, "tok").Return(nil).Once()
		m.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil).Once()

		_, err := orchestrator.ProcessPayment(ctx, req)
		require.NoError(t, err)
	})

	t.Run("Exhausted lock retries surface a concurrency error", func(t *testing.T) {
		orchestrator, m := setupPayment(t)

		m.expectPrecheck(ctx, pendingReservation())
		m.locker.EXPECT().TryAcquire(ctx, paymentLockKey, 3*time.Second, 5*time.Second).
			Return(nil, apperrors.ErrLockNotAcquired).Times(3)

		_, err := orchestrator.ProcessPayment(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrLockNotAcquired)
		assert.Equal(t, apperrors.KindConcurrency, apperrors.KindOf(err))
		assert.Equal(t, 0, m.tx.calls)
	})

	t.Run("Payment without token skips release", func(t *testing.T) {
		orchestrator, m := setupPayment(t)

		m.expectPrecheck(ctx, pendingReservation())
		m.locker.EXPECT().TryAcquire(ctx, paymentLockKey, 3*time.Second, 5*time.Second).Return(guard(), nil).Once()
		m.expectLockedReservation(ctx, pendingReservation())
		m.paymentRepo.EXPECT().ExistsByReservationID(ctx, mock.Anything, int64(100)).Return(false, nil).Once()
		m.ledger.EXPECT().UseTx(ctx, mock.Anything, int64(1), int64(5000)).Return(&model.PointAccount{}, nil).Once()
		m.paymentRepo.EXPECT().Create(ctx, mock.Anything, mock.Anything).Return(&model.Payment{ID: 55}, nil).Once()
		m.inventory.EXPECT().Confirm(ctx, mock.Anything, int64(7)).Return(&model.Seat{}, nil).Once()
		m.reservationRepo.EXPECT().UpdateStatus(ctx, mock.Anything, int64(100), model.ReservationStatusConfirmed, testNow).Return(nil).Once()
		m.locker.EXPECT().Release(mock.Anything, mock.Anything).Return(nil).Once()
		m.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil).Once()

		_, err := orchestrator.ProcessPayment(ctx, model.ProcessPaymentRequest{UserID: 1, ReservationID: 100})
		require.NoError(t, err)
	})
}
