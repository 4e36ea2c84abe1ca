package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"go-gin-concert-booking/internal/model"
	apperrors "go-gin-concert-booking/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var now = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

func TestIssueToken(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, m := setupTestRouter(t)

		m.queue.EXPECT().IssueToken(mock.Anything, int64(1)).Return(&model.QueueToken{
			UserID: 1, Token: "tok", Status: model.TokenStatusWaiting, Position: 3, CreatedAt: now,
		}, nil).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/queue/tokens", model.IssueTokenRequest{UserID: 1}))

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "tok", body["token"])
		assert.Equal(t, "WAITING", body["status"])
		assert.Equal(t, float64(3), body["position"])
	})

	t.Run("Failed - Invalid JSON", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := serve(router, createRawJSONHTTPRequest("POST", "/api/v1/queue/tokens", InvalidJSON))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - ErrUserNotFound", func(t *testing.T) {
		router, m := setupTestRouter(t)

		m.queue.EXPECT().IssueToken(mock.Anything, int64(9)).Return(nil, apperrors.ErrUserNotFound).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/queue/tokens", model.IssueTokenRequest{UserID: 9}))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "user not found", decodeBody(t, w)["error"])
	})
}

func TestGetQueueStatus(t *testing.T) {
	router, m := setupTestRouter(t)

	m.queue.EXPECT().GetStatus(mock.Anything, "tok").Return(&model.QueueStatusResponse{
		Status: model.TokenStatusWaiting, Position: 12, EstimatedWaitMinutes: 1,
	}, nil).Once()

	w := serve(router, createJSONHTTPRequest("GET", "/api/v1/queue/tokens/tok", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(12), decodeBody(t, w)["position"])
}

func TestCreateReservation(t *testing.T) {
	req := model.CreateReservationRequest{UserID: 1, ScheduleID: 3, SeatID: 7, Token: "tok"}

	t.Run("Success", func(t *testing.T) {
		router, m := setupTestRouter(t)

		m.saga.EXPECT().CreateReservation(mock.Anything, req).Return(&model.Reservation{
			ID: 100, UserID: 1, SeatID: 7, ScheduleID: 3, Status: model.ReservationStatusTemporary,
			TemporaryReservedAt: now, TemporaryExpiresAt: now.Add(5 * time.Minute),
		}, nil).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/reservations", req))

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(100), body["reservation_id"])
		assert.Equal(t, "TEMPORARY", body["status"])
	})

	t.Run("Failed - Missing token", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/reservations",
			model.CreateReservationRequest{UserID: 1, ScheduleID: 3, SeatID: 7}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"ErrTokenNotActive", apperrors.ErrTokenNotActive, http.StatusForbidden},
		{"ErrSeatNotAvailable", apperrors.ErrSeatNotAvailable, http.StatusConflict},
		{"ErrSeatNotFound", apperrors.ErrSeatNotFound, http.StatusNotFound},
		{"Wrapped ErrLockTimeout", fmt.Errorf("failed to lock seat: %w", apperrors.ErrLockTimeout), http.StatusConflict},
		{"Unexpected error", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run("Failed - "+tt.name, func(t *testing.T) {
			router, m := setupTestRouter(t)

			m.saga.EXPECT().CreateReservation(mock.Anything, req).Return(nil, tt.err).Once()

			w := serve(router, createJSONHTTPRequest("POST", "/api/v1/reservations", req))

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestGetReservation(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, m := setupTestRouter(t)

		m.saga.EXPECT().GetReservation(mock.Anything, int64(100)).
			Return(&model.Reservation{ID: 100, Status: model.ReservationStatusConfirmed}, nil).Once()

		w := serve(router, createJSONHTTPRequest("GET", "/api/v1/reservations/100", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "CONFIRMED", decodeBody(t, w)["status"])
	})

	t.Run("Failed - Invalid id", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := serve(router, createJSONHTTPRequest("GET", "/api/v1/reservations/abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCancelReservation(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, m := setupTestRouter(t)

		m.saga.EXPECT().CancelReservation(mock.Anything, int64(100), int64(1)).
			Return(&model.Reservation{ID: 100, Status: model.ReservationStatusCanceled}, nil).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/reservations/100/cancel",
			model.CancelReservationRequest{UserID: 1}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "CANCELED", decodeBody(t, w)["status"])
	})

	t.Run("Failed - ErrReservationNotOwned", func(t *testing.T) {
		router, m := setupTestRouter(t)

		m.saga.EXPECT().CancelReservation(mock.Anything, int64(100), int64(2)).
			Return(nil, apperrors.ErrReservationNotOwned).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/reservations/100/cancel",
			model.CancelReservationRequest{UserID: 2}))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestProcessPayment(t *testing.T) {
	req := model.ProcessPaymentRequest{UserID: 1, ReservationID: 100, Token: "tok"}

	t.Run("Success", func(t *testing.T) {
		router, m := setupTestRouter(t)

		m.payment.EXPECT().ProcessPayment(mock.Anything, req).
			Return(&model.Payment{ID: 55, ReservationID: 100, UserID: 1, Amount: 5000, PaidAt: now}, nil).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/payments", req))

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(55), body["payment_id"])
		assert.Equal(t, float64(5000), body["amount"])
	})

	tests := []struct {
		name     string
		err      error
		want     int
		wantKind string
	}{
		{"ErrReservationAlreadyConfirmed", apperrors.ErrReservationAlreadyConfirmed, http.StatusConflict, "business_rule"},
		{"ErrInsufficientBalance", apperrors.ErrInsufficientBalance, http.StatusConflict, "business_rule"},
		{"ErrLockNotAcquired", apperrors.ErrLockNotAcquired, http.StatusLocked, "concurrency"},
		{"ErrReservationNotOwned", apperrors.ErrReservationNotOwned, http.StatusForbidden, "authorization"},
	}

	for _, tt := range tests {
		t.Run("Failed - "+tt.name, func(t *testing.T) {
			router, m := setupTestRouter(t)

			m.payment.EXPECT().ProcessPayment(mock.Anything, req).Return(nil, tt.err).Once()

			w := serve(router, createJSONHTTPRequest("POST", "/api/v1/payments", req))

			assert.Equal(t, tt.want, w.Code)
			assert.Equal(t, tt.wantKind, decodeBody(t, w)["kind"])
		})
	}
}

func TestChargePoints(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, m := setupTestRouter(t)

		m.ledger.EXPECT().Charge(mock.Anything, int64(1), int64(10000)).
			Return(&model.PointAccount{UserID: 1, Balance: 15000}, nil).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/points/charge",
			model.ChargePointRequest{UserID: 1, Amount: 10000}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(15000), decodeBody(t, w)["balance"])
	})

	t.Run("Failed - ErrInvalidAmount", func(t *testing.T) {
		router, m := setupTestRouter(t)

		m.ledger.EXPECT().Charge(mock.Anything, int64(1), int64(-5)).Return(nil, apperrors.ErrInvalidAmount).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/points/charge",
			model.ChargePointRequest{UserID: 1, Amount: -5}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetBalance(t *testing.T) {
	router, m := setupTestRouter(t)

	m.ledger.EXPECT().GetBalance(mock.Anything, int64(1)).Return(&model.PointAccount{UserID: 1, Balance: 0}, nil).Once()

	w := serve(router, createJSONHTTPRequest("GET", "/api/v1/points/1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decodeBody(t, w)["balance"])
}

func TestConcertRoutes(t *testing.T) {
	t.Run("Ranking", func(t *testing.T) {
		router, m := setupTestRouter(t)

		m.concert.EXPECT().Ranking(mock.Anything, 5).
			Return([]model.ConcertRanking{{ConcertID: 2, Reservations: 12}}, nil).Once()

		w := serve(router, createJSONHTTPRequest("GET", "/api/v1/concerts/ranking?limit=5", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"concert_id":2,"reservations":12}]`, w.Body.String())
	})

	t.Run("Available seats", func(t *testing.T) {
		router, m := setupTestRouter(t)

		m.concert.EXPECT().ListSeats(mock.Anything, int64(3), true).Return([]*model.Seat{}, nil).Once()

		w := serve(router, createJSONHTTPRequest("GET", "/api/v1/schedules/3/seats?available=true", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Schedules of unknown concert", func(t *testing.T) {
		router, m := setupTestRouter(t)

		m.concert.EXPECT().ListSchedules(mock.Anything, int64(99)).Return(nil, apperrors.ErrConcertNotFound).Once()

		w := serve(router, createJSONHTTPRequest("GET", "/api/v1/concerts/99/schedules", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
