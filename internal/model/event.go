package model

import "time"

const EventTypeReservationConfirmed = "reservation.confirmed"

// ReservationConfirmedEvent 付款成功後發出，供排行與外部通知使用
type ReservationConfirmedEvent struct {
	EventID       string    `json:"event_id"`
	ReservationID int64     `json:"reservation_id"`
	PaymentID     int64     `json:"payment_id"`
	UserID        int64     `json:"user_id"`
	SeatID        int64     `json:"seat_id"`
	ScheduleID    int64     `json:"schedule_id"`
	ConcertID     int64     `json:"concert_id"`
	Amount        int64     `json:"amount"`
	ConfirmedAt   time.Time `json:"confirmed_at"`
}
