package model

import "time"

// Concert 演出
type Concert struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ConcertSchedule 演出場次，售票期間為 [ReservationOpenAt, ReservationCloseAt)
type ConcertSchedule struct {
	ID                 int64     `json:"id" db:"id"`
	ConcertID          int64     `json:"concert_id" db:"concert_id"`
	ConcertAt          time.Time `json:"concert_at" db:"concert_at"`
	ReservationOpenAt  time.Time `json:"reservation_open_at" db:"reservation_open_at"`
	ReservationCloseAt time.Time `json:"reservation_close_at" db:"reservation_close_at"`
}

// IsOpenForSale 檢查場次在 now 是否仍開放售票
func (s *ConcertSchedule) IsOpenForSale(now time.Time) bool {
	return !now.Before(s.ReservationOpenAt) && now.Before(s.ReservationCloseAt)
}

// ConcertRanking 熱門演出排行
type ConcertRanking struct {
	ConcertID    int64 `json:"concert_id"`
	Reservations int64 `json:"reservations"`
}
