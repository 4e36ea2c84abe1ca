package service

import (
	"context"
	"time"

	"go-gin-concert-booking/internal/admission"
	"go-gin-concert-booking/internal/model"
	"go-gin-concert-booking/internal/repository"
)

type QueueService interface {
	IssueToken(ctx context.Context, userID int64) (*model.QueueToken, error)
	// GetStatus 只讀取，不會因競爭而失敗
	GetStatus(ctx context.Context, token string) (*model.QueueStatusResponse, error)
	Stats(ctx context.Context) (*model.QueueStats, error)
}

type QueueServiceImpl struct {
	userRepository     repository.UserRepository
	admissionQueue     admission.AdmissionQueue
	batchSize          int
	activationInterval time.Duration
}

func NewQueueService(
	userRepository repository.UserRepository,
	admissionQueue admission.AdmissionQueue,
	batchSize int,
	activationInterval time.Duration,
) QueueService {
	if batchSize <= 0 {
		batchSize = 1
	}
	return &QueueServiceImpl{
		userRepository:     userRepository,
		admissionQueue:     admissionQueue,
		batchSize:          batchSize,
		activationInterval: activationInterval,
	}
}

func (s *QueueServiceImpl) IssueToken(ctx context.Context, userID int64) (*model.QueueToken, error) {
	if _, err := s.userRepository.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.admissionQueue.IssueToken(ctx, userID)
}

func (s *QueueServiceImpl) GetStatus(ctx context.Context, token string) (*model.QueueStatusResponse, error) {
	qt, err := s.admissionQueue.GetStatus(ctx, token)
	if err != nil {
		return nil, err
	}

	return &model.QueueStatusResponse{
		Status:               qt.Status,
		Position:             qt.Position,
		EstimatedWaitMinutes: s.estimateWaitMinutes(qt),
		ExpiresAt:            qt.ExpiresAt,
	}, nil
}

// estimateWaitMinutes 每個啟用週期放行 batchSize 人，至少 1 分鐘
func (s *QueueServiceImpl) estimateWaitMinutes(qt *model.QueueToken) int64 {
	if qt.Status != model.TokenStatusWaiting {
		return 0
	}

	batches := (qt.Position + int64(s.batchSize) - 1) / int64(s.batchSize)
	wait := time.Duration(batches) * s.activationInterval
	minutes := int64((wait + time.Minute - 1) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func (s *QueueServiceImpl) Stats(ctx context.Context) (*model.QueueStats, error) {
	waiting, err := s.admissionQueue.WaitingCount(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.admissionQueue.ActiveCount(ctx)
	if err != nil {
		return nil, err
	}
	return &model.QueueStats{Waiting: waiting, Active: active}, nil
}
