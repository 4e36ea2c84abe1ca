package service

import (
	"context"
	"errors"

	"go-gin-concert-booking/internal/database"
	"go-gin-concert-booking/internal/model"
	"go-gin-concert-booking/internal/repository"
	apperrors "go-gin-concert-booking/pkg/app_errors"
	"go-gin-concert-booking/pkg/clock"
	"go-gin-concert-booking/pkg/retry"

	"github.com/jackc/pgx/v5"
)

type PointLedger interface {
	// 儲值：鎖定帳戶列後加值並寫入 CHARGE 紀錄
	Charge(ctx context.Context, userID int64, amount int64) (*model.PointAccount, error)
	// 扣點：餘額不足回傳 ErrInsufficientBalance
	Use(ctx context.Context, userID int64, amount int64) (*model.PointAccount, error)
	// UseTx 在呼叫端的交易內扣點，不做重試
	UseTx(ctx context.Context, tx pgx.Tx, userID int64, amount int64) (*model.PointAccount, error)
	GetBalance(ctx context.Context, userID int64) (*model.PointAccount, error)
	Histories(ctx context.Context, userID int64) ([]*model.PointHistory, error)
}

type PointLedgerImpl struct {
	txManager       database.TxManager
	userRepository  repository.UserRepository
	pointRepository repository.PointRepository
	clock           clock.Clock
	retryPolicy     retry.Policy
}

func NewPointLedger(
	txManager database.TxManager,
	userRepository repository.UserRepository,
	pointRepository repository.PointRepository,
	clk clock.Clock,
	retryPolicy retry.Policy,
) PointLedger {
	return &PointLedgerImpl{
		txManager:       txManager,
		userRepository:  userRepository,
		pointRepository: pointRepository,
		clock:           clk,
		retryPolicy:     retryPolicy,
	}
}

func (s *PointLedgerImpl) Charge(ctx context.Context, userID int64, amount int64) (*model.PointAccount, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	if _, err := s.userRepository.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	return retry.Do(ctx, s.retryPolicy, func(ctx context.Context) (*model.PointAccount, error) {
		var account *model.PointAccount
		err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
			if err := s.pointRepository.EnsureAccount(ctx, tx, userID); err != nil {
				return err
			}

			locked, err := s.pointRepository.FindByUserIDWithLock(ctx, tx, userID)
			if err != nil {
				return err
			}

			account, err = s.apply(ctx, tx, locked, amount, model.PointTypeCharge)
			return err
		})
		return account, err
	})
}

func (s *PointLedgerImpl) Use(ctx context.Context, userID int64, amount int64) (*model.PointAccount, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	return retry.Do(ctx, s.retryPolicy, func(ctx context.Context) (*model.PointAccount, error) {
		var account *model.PointAccount
		err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
			var err error
			account, err = s.UseTx(ctx, tx, userID, amount)
			return err
		})
		return account, err
	})
}

func (s *PointLedgerImpl) UseTx(ctx context.Context, tx pgx.Tx, userID int64, amount int64) (*model.PointAccount, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	locked, err := s.pointRepository.FindByUserIDWithLock(ctx, tx, userID)
	if errors.Is(err, apperrors.ErrPointAccountNotFound) {
		// 從未儲值的帳戶餘額視為 0
		return nil, apperrors.ErrInsufficientBalance
	}
	if err != nil {
		return nil, err
	}

	// 檢查餘額必須在鎖內
	if locked.Balance < amount {
		return nil, apperrors.ErrInsufficientBalance
	}

	return s.apply(ctx, tx, locked, amount, model.PointTypeUse)
}

// apply 更新餘額並追加帳本紀錄，呼叫前必須已持有帳戶列鎖
func (s *PointLedgerImpl) apply(ctx context.Context, tx pgx.Tx, account *model.PointAccount, amount int64, pointType model.PointType) (*model.PointAccount, error) {
	now := s.clock.Now()

	balance := account.Balance + amount
	if pointType == model.PointTypeUse {
		balance = account.Balance - amount
	}

	if err := s.pointRepository.UpdateBalance(ctx, tx, account.UserID, balance, now); err != nil {
		return nil, err
	}

	_, err := s.pointRepository.InsertHistory(ctx, tx, &model.PointHistory{
		UserID:    account.UserID,
		Amount:    amount,
		Type:      pointType,
		CreatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	return &model.PointAccount{UserID: account.UserID, Balance: balance, UpdatedAt: now}, nil
}

func (s *PointLedgerImpl) GetBalance(ctx context.Context, userID int64) (*model.PointAccount, error) {
	account, err := s.pointRepository.FindByUserID(ctx, userID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, apperrors.ErrPointAccountNotFound) {
		return nil, err
	}

	// 尚未建立帳戶：使用者存在時回傳 0
	if _, err := s.userRepository.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return &model.PointAccount{UserID: userID, Balance: 0}, nil
}

func (s *PointLedgerImpl) Histories(ctx context.Context, userID int64) ([]*model.PointHistory, error) {
	return s.pointRepository.ListHistories(ctx, userID)
}
