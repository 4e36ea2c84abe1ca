package service_test

import (
	"context"
	"testing"

	"go-gin-concert-booking/internal/model"
	rankingMocks "go-gin-concert-booking/internal/ranking/mocks"
	repoMocks "go-gin-concert-booking/internal/repository/mocks"
	"go-gin-concert-booking/internal/service"
	apperrors "go-gin-concert-booking/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type concertMocks struct {
	concertRepo *repoMocks.MockConcertRepository
	seatRepo    *repoMocks.MockSeatRepository
	ranking     *rankingMocks.MockRanking
}

func setupConcertService(t *testing.T) (service.ConcertService, *concertMocks) {
	m := &concertMocks{
		concertRepo: repoMocks.NewMockConcertRepository(t),
		seatRepo:    repoMocks.NewMockSeatRepository(t),
		ranking:     rankingMocks.NewMockRanking(t),
	}
	return service.NewConcertService(m.concertRepo, m.seatRepo, m.ranking), m
}

func TestConcertService_ListSchedules(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, m := setupConcertService(t)

		m.concertRepo.EXPECT().FindByID(ctx, int64(2)).Return(&model.Concert{ID: 2, Title: "Live"}, nil).Once()
		m.concertRepo.EXPECT().ListSchedules(ctx, int64(2)).Return([]*model.ConcertSchedule{openSchedule()}, nil).Once()

		schedules, err := svc.ListSchedules(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, schedules, 1)
	})

	t.Run("Failed - ErrConcertNotFound", func(t *testing.T) {
		svc, m := setupConcertService(t)

		m.concertRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, apperrors.ErrConcertNotFound).Once()

		_, err := svc.ListSchedules(ctx, 99)
		assert.ErrorIs(t, err, apperrors.ErrConcertNotFound)
	})
}

func TestConcertService_ListSeats(t *testing.T) {
	ctx := context.Background()

	t.Run("Available only", func(t *testing.T) {
		svc, m := setupConcertService(t)

		m.concertRepo.EXPECT().FindScheduleByID(ctx, int64(3)).Return(openSchedule(), nil).Once()
		m.seatRepo.EXPECT().ListBySchedule(ctx, int64(3), true).
			Return([]*model.Seat{seatWith(model.SeatStatusAvailable, testNow)}, nil).Once()

		seats, err := svc.ListSeats(ctx, 3, true)
		require.NoError(t, err)
		assert.Len(t, seats, 1)
	})

	t.Run("Failed - ErrScheduleNotFound", func(t *testing.T) {
		svc, m := setupConcertService(t)

		m.concertRepo.EXPECT().FindScheduleByID(ctx, int64(99)).Return(nil, apperrors.ErrScheduleNotFound).Once()

		_, err := svc.ListSeats(ctx, 99, false)
		assert.ErrorIs(t, err, apperrors.ErrScheduleNotFound)
	})
}

func TestConcertService_Ranking(t *testing.T) {
	ctx := context.Background()
	top := []model.ConcertRanking{{ConcertID: 2, Reservations: 12}}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"Default limit", 0, 10},
		{"Custom limit", 5, 5},
		{"Clamped limit", 1000, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupConcertService(t)

			m.ranking.EXPECT().Top(ctx, tt.want).Return(top, nil).Once()

			got, err := svc.Ranking(ctx, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, top, got)
		})
	}
}
