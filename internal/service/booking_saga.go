package service

import (
	"context"
	"time"

	"go-gin-concert-booking/internal/admission"
	"go-gin-concert-booking/internal/database"
	"go-gin-concert-booking/internal/model"
	"go-gin-concert-booking/internal/repository"
	apperrors "go-gin-concert-booking/pkg/app_errors"
	"go-gin-concert-booking/pkg/clock"
	"go-gin-concert-booking/pkg/logger"
	"go-gin-concert-booking/pkg/retry"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingSaga interface {
	// 建立暫時預約：驗證令牌 -> 檢查場次 -> 鎖座位 -> 寫入預約 -> 釋放排隊名額
	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (*model.Reservation, error)
	// 取消仍為 TEMPORARY 的預約並還原座位
	CancelReservation(ctx context.Context, reservationID int64, userID int64) (*model.Reservation, error)
	GetReservation(ctx context.Context, id int64) (*model.Reservation, error)
}

type BookingSagaImpl struct {
	txManager             database.TxManager
	admissionQueue        admission.AdmissionQueue
	inventory             SeatInventory
	seatRepository        repository.SeatRepository
	concertRepository     repository.ConcertRepository
	reservationRepository repository.ReservationRepository
	clock                 clock.Clock
	holdWindow            time.Duration
	retryPolicy           retry.Policy
}

func NewBookingSaga(
	txManager database.TxManager,
	admissionQueue admission.AdmissionQueue,
	inventory SeatInventory,
	seatRepository repository.SeatRepository,
	concertRepository repository.ConcertRepository,
	reservationRepository repository.ReservationRepository,
	clk clock.Clock,
	holdWindow time.Duration,
	retryPolicy retry.Policy,
) BookingSaga {
	return &BookingSagaImpl{
		txManager:             txManager,
		admissionQueue:        admissionQueue,
		inventory:             inventory,
		seatRepository:        seatRepository,
		concertRepository:     concertRepository,
		reservationRepository: reservationRepository,
		clock:                 clk,
		holdWindow:            holdWindow,
		retryPolicy:           retryPolicy,
	}
}

func (s *BookingSagaImpl) CreateReservation(ctx context.Context, req model.CreateReservationRequest) (*model.Reservation, error) {
	// 1. 令牌必須為 ACTIVE 且屬於本人
	token, err := s.admissionQueue.ValidateActive(ctx, req.Token)
	if err != nil {
		return nil, err
	}
	if token.UserID != req.UserID {
		return nil, apperrors.ErrTokenNotOwned
	}

	// 2. 座位屬於該場次且場次仍在售票期間 (不加鎖的讀取)
	seat, err := s.seatRepository.FindByID(ctx, req.SeatID)
	if err != nil {
		return nil, err
	}
	if seat.ScheduleID != req.ScheduleID {
		return nil, apperrors.ErrSeatNotInSchedule
	}
	schedule, err := s.concertRepository.FindScheduleByID(ctx, req.ScheduleID)
	if err != nil {
		return nil, err
	}
	if !schedule.IsOpenForSale(s.clock.Now()) {
		return nil, apperrors.ErrScheduleClosed
	}

	// 3 + 4. 鎖座位與寫入預約在同一筆交易
	reservation, err := retry.Do(ctx, s.retryPolicy, func(ctx context.Context) (*model.Reservation, error) {
		var created *model.Reservation
		err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
			if _, err := s.inventory.Hold(ctx, tx, req.SeatID); err != nil {
				return err
			}

			now := s.clock.Now()
			var err error
			created, err = s.reservationRepository.Create(ctx, tx, &model.Reservation{
				UserID:              req.UserID,
				SeatID:              req.SeatID,
				ScheduleID:          req.ScheduleID,
				Status:              model.ReservationStatusTemporary,
				TemporaryReservedAt: now,
				TemporaryExpiresAt:  now.Add(s.holdWindow),
			})
			return err
		})
		return created, err
	})
	if err != nil {
		return nil, err
	}

	// 5. 座位已確保，釋放排隊名額；失敗時名額會在令牌到期後自然釋放
	if err := s.admissionQueue.Release(ctx, req.Token); err != nil {
		logger.WithComponent("booking").Warn("failed to release queue token",
			zap.Int64("reservation_id", reservation.ID),
			zap.Error(err),
		)
	}

	return reservation, nil
}

func (s *BookingSagaImpl) CancelReservation(ctx context.Context, reservationID int64, userID int64) (*model.Reservation, error) {
	current, err := s.reservationRepository.FindByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if current.UserID != userID {
		return nil, apperrors.ErrReservationNotOwned
	}

	return retry.Do(ctx, s.retryPolicy, func(ctx context.Context) (*model.Reservation, error) {
		var canceled *model.Reservation
		err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
			// 鎖順序固定為 座位 -> 預約，與付款、逾期還原一致
			if _, err := s.seatRepository.FindByIDWithLock(ctx, tx, current.SeatID); err != nil {
				return err
			}
			reservation, err := s.reservationRepository.FindByIDWithLock(ctx, tx, reservationID)
			if err != nil {
				return err
			}
			if !reservation.Status.CanTransitionTo(model.ReservationStatusCanceled) {
				return apperrors.ErrReservationNotCancelable
			}

			if _, err := s.inventory.Release(ctx, tx, reservation.SeatID); err != nil {
				return err
			}

			now := s.clock.Now()
			if err := s.reservationRepository.UpdateStatus(ctx, tx, reservation.ID, model.ReservationStatusCanceled, now); err != nil {
				return err
			}
			reservation.Status = model.ReservationStatusCanceled
			reservation.UpdatedAt = now
			canceled = reservation
			return nil
		})
		return canceled, err
	})
}

func (s *BookingSagaImpl) GetReservation(ctx context.Context, id int64) (*model.Reservation, error) {
	return s.reservationRepository.FindByID(ctx, id)
}
