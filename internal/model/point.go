package model

import "time"

// PointType 點數異動類型
type PointType string

const (
	PointTypeCharge PointType = "CHARGE"
	PointTypeUse    PointType = "USE"
)

// PointAccount 使用者點數帳戶，Balance 永不為負
type PointAccount struct {
	UserID    int64     `json:"user_id" db:"user_id"`
	Balance   int64     `json:"balance" db:"balance"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// PointHistory 只追加的點數帳本
type PointHistory struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Amount    int64     `json:"amount" db:"amount"`
	Type      PointType `json:"type" db:"type"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ChargePointRequest 儲值請求
type ChargePointRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
	Amount int64 `json:"amount" binding:"required"`
}

// BalanceResponse 餘額響應
type BalanceResponse struct {
	UserID  int64 `json:"user_id"`
	Balance int64 `json:"balance"`
}
