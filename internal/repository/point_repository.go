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

type PointRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*model.PointAccount, error)
	ListHistories(ctx context.Context, userID int64) ([]*model.PointHistory, error)

	// Transaction methods
	EnsureAccount(ctx context.Context, tx pgx.Tx, userID int64) error
	FindByUserIDWithLock(ctx context.Context, tx pgx.Tx, userID int64) (*model.PointAccount, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, userID int64, balance int64, updatedAt time.Time) error
	InsertHistory(ctx context.Context, tx pgx.Tx, history *model.PointHistory) (*model.PointHistory, error)
}

type PointRepositoryImpl struct {
	db database.DB
}

func NewPointRepository(db database.DB) PointRepository {
	return &PointRepositoryImpl{
		db: db,
	}
}

func (r *PointRepositoryImpl) FindByUserID(ctx context.Context, userID int64) (*model.PointAccount, error) {
	query := `
		SELECT user_id, balance, updated_at
		FROM point_accounts
		WHERE user_id = $1
	`

	return r.scanAccount(r.db.QueryRow(ctx, query, userID))
}

func (r *PointRepositoryImpl) ListHistories(ctx context.Context, userID int64) ([]*model.PointHistory, error) {
	query := `
		SELECT id, user_id, amount, type, created_at
		FROM point_histories
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list point histories: %w", err)
	}
	defer rows.Close()

	histories := make([]*model.PointHistory, 0)
	for rows.Next() {
		var h model.PointHistory
		if err := rows.Scan(&h.ID, &h.UserID, &h.Amount, &h.Type, &h.CreatedAt); err != nil {
			return nil, err
		}
		histories = append(histories, &h)
	}

	return histories, rows.Err()
}

// EnsureAccount 首次儲值時建立餘額為 0 的帳戶
func (r *PointRepositoryImpl) EnsureAccount(ctx context.Context, tx pgx.Tx, userID int64) error {
	query := `
		INSERT INTO point_accounts (user_id, balance)
		VALUES ($1, 0)
		ON CONFLICT (user_id) DO NOTHING
	`

	if _, err := tx.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to ensure point account: %w", err)
	}

	return nil
}

// FindByUserIDWithLock 鎖定使用者帳戶列，同一使用者的儲值與扣款在此序列化
func (r *PointRepositoryImpl) FindByUserIDWithLock(ctx context.Context, tx pgx.Tx, userID int64) (*model.PointAccount, error) {
	query := `
		SELECT user_id, balance, updated_at
		FROM point_accounts
		WHERE user_id = $1
		FOR UPDATE
	`

	return r.scanAccount(tx.QueryRow(ctx, query, userID))
}

func (r *PointRepositoryImpl) UpdateBalance(ctx context.Context, tx pgx.Tx, userID int64, balance int64, updatedAt time.Time) error {
	query := `
		UPDATE point_accounts
		SET balance = $2, updated_at = $3
		WHERE user_id = $1
	`

	result, err := tx.Exec(ctx, query, userID, balance, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrPointAccountNotFound
	}

	return nil
}

func (r *PointRepositoryImpl) InsertHistory(ctx context.Context, tx pgx.Tx, history *model.PointHistory) (*model.PointHistory, error) {
	query := `
		INSERT INTO point_histories (user_id, amount, type, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := tx.QueryRow(ctx, query,
		history.UserID, history.Amount, history.Type, history.CreatedAt,
	).Scan(&history.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert point history: %w", err)
	}

	return history, nil
}

func (r *PointRepositoryImpl) scanAccount(row pgx.Row) (*model.PointAccount, error) {
	var account model.PointAccount
	err := row.Scan(&account.UserID, &account.Balance, &account.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, apperrors.ErrPointAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find point account: %w", err)
	}

	return &account, nil
}
