package service

import (
	"context"
	"fmt"
	"time"

	"go-gin-concert-booking/internal/admission"
	"go-gin-concert-booking/internal/database"
	"go-gin-concert-booking/internal/lock"
	"go-gin-concert-booking/internal/model"
	"go-gin-concert-booking/internal/queue"
	"go-gin-concert-booking/internal/repository"
	apperrors "go-gin-concert-booking/pkg/app_errors"
	"go-gin-concert-booking/pkg/clock"
	"go-gin-concert-booking/pkg/logger"
	"go-gin-concert-booking/pkg/retry"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentOrchestrator interface {
	// 付款：扣點、寫帳本、建立付款、確認座位、確認預約，一筆預約只會成功一次
	ProcessPayment(ctx context.Context, req model.ProcessPaymentRequest) (*model.Payment, error)
	GetPayment(ctx context.Context, reservationID int64) (*model.Payment, error)
}

type PaymentConfig struct {
	LockWait  time.Duration
	LockLease time.Duration
}

func paymentLockKey(reservationID int64) string {
	return fmt.Sprintf("lock:payment:reservation:%d", reservationID)
}

type PaymentOrchestratorImpl struct {
	txManager             database.TxManager
	locker                lock.Locker
	admissionQueue        admission.AdmissionQueue
	ledger                PointLedger
	inventory             SeatInventory
	seatRepository        repository.SeatRepository
	concertRepository     repository.ConcertRepository
	reservationRepository repository.ReservationRepository
	paymentRepository     repository.PaymentRepository
	publisher             queue.EventPublisher
	clock                 clock.Clock
	cfg                   PaymentConfig
	retryPolicy           retry.Policy
	log                   *zap.Logger
}

func NewPaymentOrchestrator(
	txManager database.TxManager,
	locker lock.Locker,
	admissionQueue admission.AdmissionQueue,
	ledger PointLedger,
	inventory SeatInventory,
	seatRepository repository.SeatRepository,
	concertRepository repository.ConcertRepository,
	reservationRepository repository.ReservationRepository,
	paymentRepository repository.PaymentRepository,
	publisher queue.EventPublisher,
	clk clock.Clock,
	cfg PaymentConfig,
	retryPolicy retry.Policy,
) PaymentOrchestrator {
	return &PaymentOrchestratorImpl{
		txManager:             txManager,
		locker:                locker,
		admissionQueue:        admissionQueue,
		ledger:                ledger,
		inventory:             inventory,
		seatRepository:        seatRepository,
		concertRepository:     concertRepository,
		reservationRepository: reservationRepository,
		paymentRepository:     paymentRepository,
		publisher:             publisher,
		clock:                 clk,
		cfg:                   cfg,
		retryPolicy:           retryPolicy,
		log:                   logger.WithComponent("payment"),
	}
}

func (s *PaymentOrchestratorImpl) ProcessPayment(ctx context.Context, req model.ProcessPaymentRequest) (*model.Payment, error) {
	// 鎖外的唯讀檢查，讓臨界區保持短小
	reservation, err := s.reservationRepository.FindByID(ctx, req.ReservationID)
	if err != nil {
		return nil, err
	}
	if err := validatePayable(reservation, req.UserID, s.clock.Now()); err != nil {
		return nil, err
	}
	seat, err := s.seatRepository.FindByID(ctx, reservation.SeatID)
	if err != nil {
		return nil, err
	}
	schedule, err := s.concertRepository.FindScheduleByID(ctx, reservation.ScheduleID)
	if err != nil {
		return nil, err
	}

	// 取鎖失敗才重試；退避發生在鎖外
	payment, err := retry.Do(ctx, s.retryPolicy, func(ctx context.Context) (*model.Payment, error) {
		return s.payUnderLock(ctx, req, seat.ID, seat.Price)
	})
	if err != nil {
		return nil, err
	}

	// 6. 釋放排隊名額 (best-effort)
	if req.Token != "" {
		if err := s.admissionQueue.Release(ctx, req.Token); err != nil {
			s.log.Warn("failed to release queue token after payment",
				zap.Int64("reservation_id", req.ReservationID),
				zap.Error(err),
			)
		}
	}

	event := &model.ReservationConfirmedEvent{
		EventID:       uuid.NewString(),
		ReservationID: reservation.ID,
		PaymentID:     payment.ID,
		UserID:        payment.UserID,
		SeatID:        reservation.SeatID,
		ScheduleID:    reservation.ScheduleID,
		ConcertID:     schedule.ConcertID,
		Amount:        payment.Amount,
		ConfirmedAt:   payment.PaidAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("reservation confirmed event dropped",
			zap.Int64("reservation_id", reservation.ID),
			zap.Error(err),
		)
	}

	return payment, nil
}

func (s *PaymentOrchestratorImpl) payUnderLock(ctx context.Context, req model.ProcessPaymentRequest, seatID int64, price int64) (*model.Payment, error) {
	guard, err := s.locker.TryAcquire(ctx, paymentLockKey(req.ReservationID), s.cfg.LockWait, s.cfg.LockLease)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := s.locker.Release(context.Background(), guard); err != nil {
			s.log.Warn("failed to release payment lock",
				zap.String("key", guard.Key),
				zap.Error(err),
			)
		}
	}()

	var payment *model.Payment
	err = s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		// 鎖順序固定為 座位 -> 預約
		reservation, err := s.lockReservation(ctx, tx, req, seatID)
		if err != nil {
			return err
		}

		// 付款紀錄是否存在才是「已付款」的依據
		paid, err := s.paymentRepository.ExistsByReservationID(ctx, tx, reservation.ID)
		if err != nil {
			return err
		}
		if paid {
			return apperrors.ErrAlreadyPaid
		}

		now := s.clock.Now()

		// 1 + 2. 扣點並寫入 USE 帳本
		if _, err := s.ledger.UseTx(ctx, tx, req.UserID, price); err != nil {
			return err
		}

		// 3. 建立付款紀錄
		payment, err = s.paymentRepository.Create(ctx, tx, &model.Payment{
			ReservationID: reservation.ID,
			UserID:        req.UserID,
			Amount:        price,
			PaidAt:        now,
		})
		if err != nil {
			return err
		}

		// 4. 座位 TEMPORARY_RESERVED -> RESERVED
		if _, err := s.inventory.Confirm(ctx, tx, reservation.SeatID); err != nil {
			return err
		}

		// 5. 預約 TEMPORARY -> CONFIRMED
		return s.reservationRepository.UpdateStatus(ctx, tx, reservation.ID, model.ReservationStatusConfirmed, now)
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

// lockReservation 在鎖內重新驗證，關閉等待鎖期間狀態被改變的窗口
func (s *PaymentOrchestratorImpl) lockReservation(ctx context.Context, tx pgx.Tx, req model.ProcessPaymentRequest, seatID int64) (*model.Reservation, error) {
	if _, err := s.seatRepository.FindByIDWithLock(ctx, tx, seatID); err != nil {
		return nil, err
	}

	reservation, err := s.reservationRepository.FindByIDWithLock(ctx, tx, req.ReservationID)
	if err != nil {
		return nil, err
	}
	if err := validatePayable(reservation, req.UserID, s.clock.Now()); err != nil {
		return nil, err
	}
	return reservation, nil
}

func validatePayable(reservation *model.Reservation, userID int64, now time.Time) error {
	if reservation.UserID != userID {
		return apperrors.ErrReservationNotOwned
	}
	switch reservation.Status {
	case model.ReservationStatusConfirmed:
		return apperrors.ErrReservationAlreadyConfirmed
	case model.ReservationStatusTemporary:
	default:
		return apperrors.ErrReservationNotPayable
	}
	if reservation.IsHoldExpired(now) {
		return apperrors.ErrReservationExpired
	}
	return nil
}

func (s *PaymentOrchestratorImpl) GetPayment(ctx context.Context, reservationID int64) (*model.Payment, error) {
	return s.paymentRepository.FindByReservationID(ctx, reservationID)
}
