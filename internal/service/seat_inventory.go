package service

import (
	"context"
	"time"

	"go-gin-concert-booking/internal/database"
	"go-gin-concert-booking/internal/model"
	"go-gin-concert-booking/internal/repository"
	apperrors "go-gin-concert-booking/pkg/app_errors"
	"go-gin-concert-booking/pkg/clock"

	"github.com/jackc/pgx/v5"
)

// SeatInventory 座位狀態機。所有狀態轉換都先以 FOR UPDATE 鎖定座位列再檢查狀態
type SeatInventory interface {
	// Hold AVAILABLE -> TEMPORARY_RESERVED
	Hold(ctx context.Context, tx pgx.Tx, seatID int64) (*model.Seat, error)
	// Confirm TEMPORARY_RESERVED -> RESERVED
	Confirm(ctx context.Context, tx pgx.Tx, seatID int64) (*model.Seat, error)
	// Release TEMPORARY_RESERVED -> AVAILABLE (取消預約)
	Release(ctx context.Context, tx pgx.Tx, seatID int64) (*model.Seat, error)
	// RestoreIfExpired 保留逾期時還原座位並一併取消其 TEMPORARY 預約
	RestoreIfExpired(ctx context.Context, seatID int64, holdWindow time.Duration) (bool, error)
	ListExpiredHolds(ctx context.Context, holdWindow time.Duration, limit int) ([]int64, error)
}

type SeatInventoryImpl struct {
	txManager             database.TxManager
	seatRepository        repository.SeatRepository
	reservationRepository repository.ReservationRepository
	clock                 clock.Clock
}

func NewSeatInventory(
	txManager database.TxManager,
	seatRepository repository.SeatRepository,
	reservationRepository repository.ReservationRepository,
	clk clock.Clock,
) SeatInventory {
	return &SeatInventoryImpl{
		txManager:             txManager,
		seatRepository:        seatRepository,
		reservationRepository: reservationRepository,
		clock:                 clk,
	}
}

func (s *SeatInventoryImpl) Hold(ctx context.Context, tx pgx.Tx, seatID int64) (*model.Seat, error) {
	seat, err := s.seatRepository.FindByIDWithLock(ctx, tx, seatID)
	if err != nil {
		return nil, err
	}
	if seat.Status != model.SeatStatusAvailable {
		return nil, apperrors.ErrSeatNotAvailable
	}

	return s.transition(ctx, tx, seat, model.SeatStatusTemporaryReserved)
}

func (s *SeatInventoryImpl) Confirm(ctx context.Context, tx pgx.Tx, seatID int64) (*model.Seat, error) {
	seat, err := s.seatRepository.FindByIDWithLock(ctx, tx, seatID)
	if err != nil {
		return nil, err
	}
	if seat.Status != model.SeatStatusTemporaryReserved {
		return nil, apperrors.ErrInvalidSeatStatus
	}

	return s.transition(ctx, tx, seat, model.SeatStatusReserved)
}

func (s *SeatInventoryImpl) Release(ctx context.Context, tx pgx.Tx, seatID int64) (*model.Seat, error) {
	seat, err := s.seatRepository.FindByIDWithLock(ctx, tx, seatID)
	if err != nil {
		return nil, err
	}
	if seat.Status != model.SeatStatusTemporaryReserved {
		return nil, apperrors.ErrInvalidSeatStatus
	}

	return s.transition(ctx, tx, seat, model.SeatStatusAvailable)
}

func (s *SeatInventoryImpl) RestoreIfExpired(ctx context.Context, seatID int64, holdWindow time.Duration) (bool, error) {
	restored := false

	err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		seat, err := s.seatRepository.FindByIDWithLock(ctx, tx, seatID)
		if err != nil {
			return err
		}
		// 掃描後到取得鎖之間可能已被付款或取消
		if !seat.HoldExpired(s.clock.Now(), holdWindow) {
			return nil
		}

		if _, err := s.transition(ctx, tx, seat, model.SeatStatusAvailable); err != nil {
			return err
		}
		if _, err := s.reservationRepository.CancelTemporaryBySeat(ctx, tx, seatID, seat.UpdatedAt); err != nil {
			return err
		}

		restored = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return restored, nil
}

func (s *SeatInventoryImpl) ListExpiredHolds(ctx context.Context, holdWindow time.Duration, limit int) ([]int64, error) {
	return s.seatRepository.ListExpiredHolds(ctx, s.clock.Now().Add(-holdWindow), limit)
}

func (s *SeatInventoryImpl) transition(ctx context.Context, tx pgx.Tx, seat *model.Seat, target model.SeatStatus) (*model.Seat, error) {
	if !seat.Status.CanTransitionTo(target) {
		return nil, apperrors.ErrInvalidSeatStatus
	}

	now := s.clock.Now()
	if err := s.seatRepository.UpdateStatus(ctx, tx, seat.ID, target, now); err != nil {
		return nil, err
	}

	seat.Status = target
	seat.UpdatedAt = now
	return seat, nil
}
