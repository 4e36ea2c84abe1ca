package repository

import (
	"context"
	"fmt"
	"go-gin-concert-booking/internal/database"
	"go-gin-concert-booking/internal/model"
	apperrors "go-gin-concert-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
)

type ConcertRepository interface {
	Create(ctx context.Context, concert *model.Concert) (*model.Concert, error)
	List(ctx context.Context) ([]*model.Concert, error)
	FindByID(ctx context.Context, id int64) (*model.Concert, error)

	CreateSchedule(ctx context.Context, schedule *model.ConcertSchedule) (*model.ConcertSchedule, error)
	ListSchedules(ctx context.Context, concertID int64) ([]*model.ConcertSchedule, error)
	FindScheduleByID(ctx context.Context, id int64) (*model.ConcertSchedule, error)
}

type ConcertRepositoryImpl struct {
	db database.DB
}

func NewConcertRepository(db database.DB) ConcertRepository {
	return &ConcertRepositoryImpl{
		db: db,
	}
}

func (r *ConcertRepositoryImpl) Create(ctx context.Context, concert *model.Concert) (*model.Concert, error) {
	query := `
		INSERT INTO concerts (title, description)
		VALUES ($1, $2)
		RETURNING id, title, description, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, concert.Title, concert.Description).Scan(
		&concert.ID,
		&concert.Title,
		&concert.Description,
		&concert.CreatedAt,
		&concert.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create concert: %w", err)
	}

	return concert, nil
}

func (r *ConcertRepositoryImpl) List(ctx context.Context) ([]*model.Concert, error) {
	query := `
		SELECT id, title, description, created_at, updated_at
		FROM concerts
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list concerts: %w", err)
	}
	defer rows.Close()

	concerts := make([]*model.Concert, 0)
	for rows.Next() {
		var concert model.Concert
		if err := rows.Scan(
			&concert.ID,
			&concert.Title,
			&concert.Description,
			&concert.CreatedAt,
			&concert.UpdatedAt,
		); err != nil {
			return nil, err
		}
		concerts = append(concerts, &concert)
	}

	return concerts, rows.Err()
}

func (r *ConcertRepositoryImpl) FindByID(ctx context.Context, id int64) (*model.Concert, error) {
	query := `
		SELECT id, title, description, created_at, updated_at
		FROM concerts
		WHERE id = $1
	`

	var concert model.Concert
	err := r.db.QueryRow(ctx, query, id).Scan(
		&concert.ID,
		&concert.Title,
		&concert.Description,
		&concert.CreatedAt,
		&concert.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, apperrors.ErrConcertNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find concert: %w", err)
	}

	return &concert, nil
}

func (r *ConcertRepositoryImpl) CreateSchedule(ctx context.Context, schedule *model.ConcertSchedule) (*model.ConcertSchedule, error) {
	query := `
		INSERT INTO concert_schedules (concert_id, concert_at, reservation_open_at, reservation_close_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		schedule.ConcertID, schedule.ConcertAt, schedule.ReservationOpenAt, schedule.ReservationCloseAt,
	).Scan(&schedule.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}

	return schedule, nil
}

func (r *ConcertRepositoryImpl) ListSchedules(ctx context.Context, concertID int64) ([]*model.ConcertSchedule, error) {
	query := `
		SELECT id, concert_id, concert_at, reservation_open_at, reservation_close_at
		FROM concert_schedules
		WHERE concert_id = $1
		ORDER BY concert_at
	`

	rows, err := r.db.Query(ctx, query, concertID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	schedules := make([]*model.ConcertSchedule, 0)
	for rows.Next() {
		var s model.ConcertSchedule
		if err := rows.Scan(&s.ID, &s.ConcertID, &s.ConcertAt, &s.ReservationOpenAt, &s.ReservationCloseAt); err != nil {
			return nil, err
		}
		schedules = append(schedules, &s)
	}

	return schedules, rows.Err()
}

func (r *ConcertRepositoryImpl) FindScheduleByID(ctx context.Context, id int64) (*model.ConcertSchedule, error) {
	query := `
		SELECT id, concert_id, concert_at, reservation_open_at, reservation_close_at
		FROM concert_schedules
		WHERE id = $1
	`

	var s model.ConcertSchedule
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.ConcertID, &s.ConcertAt, &s.ReservationOpenAt, &s.ReservationCloseAt)
	if err == pgx.ErrNoRows {
		return nil, apperrors.ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find schedule: %w", err)
	}

	return &s, nil
}
