package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeatStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to SeatStatus
		want     bool
	}{
		{SeatStatusAvailable, SeatStatusTemporaryReserved, true},
		{SeatStatusAvailable, SeatStatusReserved, false},
		{SeatStatusTemporaryReserved, SeatStatusReserved, true},
		{SeatStatusTemporaryReserved, SeatStatusAvailable, true},
		{SeatStatusReserved, SeatStatusAvailable, false},
		{SeatStatusReserved, SeatStatusTemporaryReserved, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
	assert.False(t, SeatStatus("SOLD").IsValid())
}

func TestSeat_HoldExpired(t *testing.T) {
	held := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	seat := &Seat{Status: SeatStatusTemporaryReserved, UpdatedAt: held}

	assert.False(t, seat.HoldExpired(held.Add(5*time.Minute), 5*time.Minute))
	assert.True(t, seat.HoldExpired(held.Add(5*time.Minute+time.Second), 5*time.Minute))

	seat.Status = SeatStatusReserved
	assert.False(t, seat.HoldExpired(held.Add(time.Hour), 5*time.Minute))
}

func TestReservationStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, ReservationStatusTemporary.CanTransitionTo(ReservationStatusConfirmed))
	assert.True(t, ReservationStatusTemporary.CanTransitionTo(ReservationStatusCanceled))
	assert.False(t, ReservationStatusConfirmed.CanTransitionTo(ReservationStatusCanceled))
	assert.False(t, ReservationStatusCanceled.CanTransitionTo(ReservationStatusTemporary))
}

func TestConcertSchedule_IsOpenForSale(t *testing.T) {
	open := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := &ConcertSchedule{ReservationOpenAt: open, ReservationCloseAt: open.Add(24 * time.Hour)}

	assert.False(t, s.IsOpenForSale(open.Add(-time.Second)))
	assert.True(t, s.IsOpenForSale(open))
	assert.True(t, s.IsOpenForSale(open.Add(23*time.Hour)))
	assert.False(t, s.IsOpenForSale(open.Add(24*time.Hour)))
}
