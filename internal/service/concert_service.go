package service

import (
	"context"

	"go-gin-concert-booking/internal/model"
	"go-gin-concert-booking/internal/ranking"
	"go-gin-concert-booking/internal/repository"
)

const maxRankingLimit = 100

type ConcertService interface {
	ListConcerts(ctx context.Context) ([]*model.Concert, error)
	ListSchedules(ctx context.Context, concertID int64) ([]*model.ConcertSchedule, error)
	ListSeats(ctx context.Context, scheduleID int64, availableOnly bool) ([]*model.Seat, error)
	Ranking(ctx context.Context, limit int) ([]model.ConcertRanking, error)
}

type ConcertServiceImpl struct {
	concertRepository repository.ConcertRepository
	seatRepository    repository.SeatRepository
	ranking           ranking.Ranking
}

func NewConcertService(
	concertRepository repository.ConcertRepository,
	seatRepository repository.SeatRepository,
	ranking ranking.Ranking,
) ConcertService {
	return &ConcertServiceImpl{
		concertRepository: concertRepository,
		seatRepository:    seatRepository,
		ranking:           ranking,
	}
}

func (s *ConcertServiceImpl) ListConcerts(ctx context.Context) ([]*model.Concert, error) {
	return s.concertRepository.List(ctx)
}

func (s *ConcertServiceImpl) ListSchedules(ctx context.Context, concertID int64) ([]*model.ConcertSchedule, error) {
	if _, err := s.concertRepository.FindByID(ctx, concertID); err != nil {
		return nil, err
	}
	return s.concertRepository.ListSchedules(ctx, concertID)
}

func (s *ConcertServiceImpl) ListSeats(ctx context.Context, scheduleID int64, availableOnly bool) ([]*model.Seat, error) {
	if _, err := s.concertRepository.FindScheduleByID(ctx, scheduleID); err != nil {
		return nil, err
	}
	return s.seatRepository.ListBySchedule(ctx, scheduleID, availableOnly)
}

func (s *ConcertServiceImpl) Ranking(ctx context.Context, limit int) ([]model.ConcertRanking, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > maxRankingLimit {
		limit = maxRankingLimit
	}
	return s.ranking.Top(ctx, limit)
}
