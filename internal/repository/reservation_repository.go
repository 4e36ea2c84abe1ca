package repository

import (
	"context"
	"fmt"
	"go-gin-concert-booking/internal/database"
	"go-gin-concert-booking/internal/model"
	apperrors "go-gin-concert-booking/pkg/app_errors"
	"time"

	"github.com/jackc/pgx/v5"
)

// 同一座位最多一筆非 CANCELED 預約
const liveSeatReservationConstraint = "uq_reservations_live_seat"

type ReservationRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Reservation, error)

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, reservation *model.Reservation) (*model.Reservation, error)
	FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int64) (*model.Reservation, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id int64, status model.ReservationStatus, updatedAt time.Time) error
	// CancelTemporaryBySeat 將座位上仍為 TEMPORARY 的預約改為 CANCELED，回傳影響筆數
	CancelTemporaryBySeat(ctx context.Context, tx pgx.Tx, seatID int64, updatedAt time.Time) (int64, error)
}

type ReservationRepositoryImpl struct {
	db database.DB
}

func NewReservationRepository(db database.DB) ReservationRepository {
	return &ReservationRepositoryImpl{
		db: db,
	}
}

func (r *ReservationRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, reservation *model.Reservation) (*model.Reservation, error) {
	query := `
		INSERT INTO reservations (
			user_id, seat_id, schedule_id, status, temporary_reserved_at, temporary_expires_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $5)
		RETURNING id, updated_at
	`

	err := tx.QueryRow(ctx, query,
		reservation.UserID,
		reservation.SeatID,
		reservation.ScheduleID,
		reservation.Status,
		reservation.TemporaryReservedAt,
		reservation.TemporaryExpiresAt,
	).Scan(&reservation.ID, &reservation.UpdatedAt)
	if database.IsUniqueViolation(err, liveSeatReservationConstraint) {
		return nil, apperrors.ErrSeatNotAvailable
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	return reservation, nil
}

func (r *ReservationRepositoryImpl) FindByID(ctx context.Context, id int64) (*model.Reservation, error) {
	query := `
		SELECT id, user_id, seat_id, schedule_id, status,
		       temporary_reserved_at, temporary_expires_at, updated_at
		FROM reservations
		WHERE id = $1
	`

	return r.scanReservation(r.db.QueryRow(ctx, query, id))
}

func (r *ReservationRepositoryImpl) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int64) (*model.Reservation, error) {
	query := `
		SELECT id, user_id, seat_id, schedule_id, status,
		       temporary_reserved_at, temporary_expires_at, updated_at
		FROM reservations
		WHERE id = $1
		FOR UPDATE
	`

	return r.scanReservation(tx.QueryRow(ctx, query, id))
}

func (r *ReservationRepositoryImpl) UpdateStatus(ctx context.Context, tx pgx.Tx, id int64, status model.ReservationStatus, updatedAt time.Time) error {
	query := `
		UPDATE reservations
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query, id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update reservation status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrReservationNotFound
	}

	return nil
}

func (r *ReservationRepositoryImpl) CancelTemporaryBySeat(ctx context.Context, tx pgx.Tx, seatID int64, updatedAt time.Time) (int64, error) {
	query := `
		UPDATE reservations
		SET status = 'CANCELED', updated_at = $2
		WHERE seat_id = $1 AND status = 'TEMPORARY'
	`

	result, err := tx.Exec(ctx, query, seatID, updatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel reservations by seat: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *ReservationRepositoryImpl) scanReservation(row pgx.Row) (*model.Reservation, error) {
	var reservation model.Reservation
	err := row.Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.SeatID,
		&reservation.ScheduleID,
		&reservation.Status,
		&reservation.TemporaryReservedAt,
		&reservation.TemporaryExpiresAt,
		&reservation.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, apperrors.ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find reservation: %w", err)
	}

	return &reservation, nil
}
