package model

import "time"

// Payment 付款紀錄，每筆預約最多一筆
type Payment struct {
	ID            int64     `json:"id" db:"id"`
	ReservationID int64     `json:"reservation_id" db:"reservation_id"`
	UserID        int64     `json:"user_id" db:"user_id"`
	Amount        int64     `json:"amount" db:"amount"`
	PaidAt        time.Time `json:"paid_at" db:"paid_at"`
}

// ProcessPaymentRequest 付款請求
type ProcessPaymentRequest struct {
	UserID        int64  `json:"user_id" binding:"required"`
	ReservationID int64  `json:"reservation_id" binding:"required"`
	Token         string `json:"token"`
}

// PaymentResponse 付款響應
type PaymentResponse struct {
	PaymentID int64     `json:"payment_id"`
	Amount    int64     `json:"amount"`
	PaidAt    time.Time `json:"paid_at"`
}

func NewPaymentResponse(p *Payment) *PaymentResponse {
	return &PaymentResponse{PaymentID: p.ID, Amount: p.Amount, PaidAt: p.PaidAt}
}
