package model

import "time"

// ReservationStatus 預約狀態類型
type ReservationStatus string

const (
	ReservationStatusTemporary ReservationStatus = "TEMPORARY"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCanceled  ReservationStatus = "CANCELED"
)

// IsValid 驗證狀態是否有效
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusTemporary, ReservationStatusConfirmed, ReservationStatusCanceled:
		return true
	}
	return false
}

// CanTransitionTo 只有 TEMPORARY 可以轉換，CONFIRMED 與 CANCELED 為終態
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	return s == ReservationStatusTemporary &&
		(target == ReservationStatusConfirmed || target == ReservationStatusCanceled)
}

// Reservation 預約模型
type Reservation struct {
	ID                  int64             `json:"id" db:"id"`
	UserID              int64             `json:"user_id" db:"user_id"`
	SeatID              int64             `json:"seat_id" db:"seat_id"`
	ScheduleID          int64             `json:"schedule_id" db:"schedule_id"`
	Status              ReservationStatus `json:"status" db:"status"`
	TemporaryReservedAt time.Time         `json:"temporary_reserved_at" db:"temporary_reserved_at"`
	TemporaryExpiresAt  time.Time         `json:"temporary_expires_at" db:"temporary_expires_at"`
	UpdatedAt           time.Time         `json:"updated_at" db:"updated_at"`
}

// IsHoldExpired 暫時預約是否已過期
func (r *Reservation) IsHoldExpired(now time.Time) bool {
	return r.Status == ReservationStatusTemporary && !now.Before(r.TemporaryExpiresAt)
}

// CreateReservationRequest 建立預約請求
type CreateReservationRequest struct {
	UserID     int64  `json:"user_id" binding:"required"`
	ScheduleID int64  `json:"schedule_id" binding:"required"`
	SeatID     int64  `json:"seat_id" binding:"required"`
	Token      string `json:"token" binding:"required"`
}

// CancelReservationRequest 取消預約請求
type CancelReservationRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}

// ReservationResponse 預約響應
type ReservationResponse struct {
	ReservationID int64             `json:"reservation_id"`
	Status        ReservationStatus `json:"status"`
	ReservedAt    time.Time         `json:"reserved_at"`
	ExpiresAt     time.Time         `json:"expires_at"`
}

func NewReservationResponse(r *Reservation) *ReservationResponse {
	return &ReservationResponse{
		ReservationID: r.ID,
		Status:        r.Status,
		ReservedAt:    r.TemporaryReservedAt,
		ExpiresAt:     r.TemporaryExpiresAt,
	}
}
