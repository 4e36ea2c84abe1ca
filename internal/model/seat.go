package model

import "time"

// SeatStatus 座位狀態類型
type SeatStatus string

const (
	SeatStatusAvailable         SeatStatus = "AVAILABLE"
	SeatStatusTemporaryReserved SeatStatus = "TEMPORARY_RESERVED"
	SeatStatusReserved          SeatStatus = "RESERVED"
)

var seatTransitions = map[SeatStatus][]SeatStatus{
	SeatStatusAvailable:         {SeatStatusTemporaryReserved},
	SeatStatusTemporaryReserved: {SeatStatusReserved, SeatStatusAvailable},
	SeatStatusReserved:          {},
}

// IsValid 驗證狀態是否有效
func (s SeatStatus) IsValid() bool {
	_, ok := seatTransitions[s]
	return ok
}

// CanTransitionTo 檢查是否可以轉換到目標狀態
func (s SeatStatus) CanTransitionTo(target SeatStatus) bool {
	for _, status := range seatTransitions[s] {
		if status == target {
			return true
		}
	}
	return false
}

// Seat 座位模型，UpdatedAt 搭配保留時間決定暫時保留是否逾期
type Seat struct {
	ID         int64      `json:"id" db:"id"`
	ScheduleID int64      `json:"schedule_id" db:"schedule_id"`
	SeatNumber int        `json:"seat_number" db:"seat_number"`
	Status     SeatStatus `json:"status" db:"status"`
	Price      int64      `json:"price" db:"price"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// HoldExpired 暫時保留超過 holdWindow
func (s *Seat) HoldExpired(now time.Time, holdWindow time.Duration) bool {
	return s.Status == SeatStatusTemporaryReserved && now.After(s.UpdatedAt.Add(holdWindow))
}

// ListSeatsQuery 查詢場次座位
type ListSeatsQuery struct {
	AvailableOnly bool `form:"available"`
}
