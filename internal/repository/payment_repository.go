package repository

import (
	"context"
	"fmt"
	"go-gin-concert-booking/internal/database"
	"go-gin-concert-booking/internal/model"
	apperrors "go-gin-concert-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
)

const paymentReservationConstraint = "uq_payments_reservation"

type PaymentRepository interface {
	FindByReservationID(ctx context.Context, reservationID int64) (*model.Payment, error)

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, payment *model.Payment) (*model.Payment, error)
	ExistsByReservationID(ctx context.Context, tx pgx.Tx, reservationID int64) (bool, error)
}

type PaymentRepositoryImpl struct {
	db database.DB
}

func NewPaymentRepository(db database.DB) PaymentRepository {
	return &PaymentRepositoryImpl{
		db: db,
	}
}

// Create 付款紀錄是「已付款」的唯一依據，唯一約束擋下重複付款
func (r *PaymentRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, payment *model.Payment) (*model.Payment, error) {
	query := `
		INSERT INTO payments (reservation_id, user_id, amount, paid_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := tx.QueryRow(ctx, query,
		payment.ReservationID, payment.UserID, payment.Amount, payment.PaidAt,
	).Scan(&payment.ID)
	if database.IsUniqueViolation(err, paymentReservationConstraint) {
		return nil, apperrors.ErrAlreadyPaid
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return payment, nil
}

func (r *PaymentRepositoryImpl) ExistsByReservationID(ctx context.Context, tx pgx.Tx, reservationID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM payments WHERE reservation_id = $1)`

	var exists bool
	if err := tx.QueryRow(ctx, query, reservationID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payment: %w", err)
	}

	return exists, nil
}

func (r *PaymentRepositoryImpl) FindByReservationID(ctx context.Context, reservationID int64) (*model.Payment, error) {
	query := `
		SELECT id, reservation_id, user_id, amount, paid_at
		FROM payments
		WHERE reservation_id = $1
	`

	var payment model.Payment
	err := r.db.QueryRow(ctx, query, reservationID).Scan(
		&payment.ID,
		&payment.ReservationID,
		&payment.UserID,
		&payment.Amount,
		&payment.PaidAt,
	)
	if err == pgx.ErrNoRows {
		return nil, apperrors.ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}

	return &payment, nil
}
