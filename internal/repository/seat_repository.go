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

type SeatRepository interface {
	Create(ctx context.Context, seat *model.Seat) (*model.Seat, error)
	FindByID(ctx context.Context, id int64) (*model.Seat, error)
	ListBySchedule(ctx context.Context, scheduleID int64, availableOnly bool) ([]*model.Seat, error)
	// ListExpiredHolds 找出 updated_at 早於 cutoff 的 TEMPORARY_RESERVED 座位，不加鎖
	ListExpiredHolds(ctx context.Context, cutoff time.Time, limit int) ([]int64, error)

	// Transaction methods
	FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int64) (*model.Seat, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id int64, status model.SeatStatus, updatedAt time.Time) error
}

type SeatRepositoryImpl struct {
	db database.DB
}

func NewSeatRepository(db database.DB) SeatRepository {
	return &SeatRepositoryImpl{
		db: db,
	}
}

func (r *SeatRepositoryImpl) Create(ctx context.Context, seat *model.Seat) (*model.Seat, error) {
	if seat.Status == "" {
		seat.Status = model.SeatStatusAvailable
	}

	query := `
		INSERT INTO seats (schedule_id, seat_number, status, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		seat.ScheduleID, seat.SeatNumber, seat.Status, seat.Price,
	).Scan(&seat.ID, &seat.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create seat: %w", err)
	}

	return seat, nil
}

func (r *SeatRepositoryImpl) FindByID(ctx context.Context, id int64) (*model.Seat, error) {
	query := `
		SELECT id, schedule_id, seat_number, status, price, updated_at
		FROM seats
		WHERE id = $1
	`

	return r.scanSeat(r.db.QueryRow(ctx, query, id))
}

func (r *SeatRepositoryImpl) ListBySchedule(ctx context.Context, scheduleID int64, availableOnly bool) ([]*model.Seat, error) {
	query := `
		SELECT id, schedule_id, seat_number, status, price, updated_at
		FROM seats
		WHERE schedule_id = $1
		  AND ($2 = FALSE OR status = 'AVAILABLE')
		ORDER BY seat_number
	`

	rows, err := r.db.Query(ctx, query, scheduleID, availableOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list seats: %w", err)
	}
	defer rows.Close()

	seats := make([]*model.Seat, 0)
	for rows.Next() {
		var seat model.Seat
		if err := rows.Scan(
			&seat.ID,
			&seat.ScheduleID,
			&seat.SeatNumber,
			&seat.Status,
			&seat.Price,
			&seat.UpdatedAt,
		); err != nil {
			return nil, err
		}
		seats = append(seats, &seat)
	}

	return seats, rows.Err()
}

func (r *SeatRepositoryImpl) ListExpiredHolds(ctx context.Context, cutoff time.Time, limit int) ([]int64, error) {
	query := `
		SELECT id
		FROM seats
		WHERE status = 'TEMPORARY_RESERVED'
		  AND updated_at < $1
		ORDER BY updated_at
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list expired holds: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// FindByIDWithLock 以 FOR UPDATE 鎖定座位列，等待上限由交易的 lock_timeout 控制
func (r *SeatRepositoryImpl) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int64) (*model.Seat, error) {
	query := `
		SELECT id, schedule_id, seat_number, status, price, updated_at
		FROM seats
		WHERE id = $1
		FOR UPDATE
	`

	return r.scanSeat(tx.QueryRow(ctx, query, id))
}

func (r *SeatRepositoryImpl) UpdateStatus(ctx context.Context, tx pgx.Tx, id int64, status model.SeatStatus, updatedAt time.Time) error {
	query := `
		UPDATE seats
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query, id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update seat status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrSeatNotFound
	}

	return nil
}

func (r *SeatRepositoryImpl) scanSeat(row pgx.Row) (*model.Seat, error) {
	var seat model.Seat
	err := row.Scan(
		&seat.ID,
		&seat.ScheduleID,
		&seat.SeatNumber,
		&seat.Status,
		&seat.Price,
		&seat.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, apperrors.ErrSeatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find seat: %w", err)
	}

	return &seat, nil
}
