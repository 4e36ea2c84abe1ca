package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// TxManager 執行一個本地交易：fn 回傳錯誤即整筆回滾
type TxManager interface {
	WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}

type TxManagerImpl struct {
	db          DB
	lockTimeout time.Duration
}

// NewTxManager lockTimeout > 0 時每筆交易都會 SET LOCAL lock_timeout，
// 讓 SELECT ... FOR UPDATE 在等待超過上限後失敗而不是無限阻塞
func NewTxManager(db DB, lockTimeout time.Duration) TxManager {
	return &TxManagerImpl{db: db, lockTimeout: lockTimeout}
}

func (m *TxManagerImpl) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := m.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Commit 之後的 Rollback 為 no-op
	defer tx.Rollback(context.Background())

	if m.lockTimeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", m.lockTimeout.Milliseconds())
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to set lock timeout: %w", err)
		}
	}

	if err := fn(tx); err != nil {
		return TranslateError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return TranslateError(fmt.Errorf("failed to commit transaction: %w", err))
	}
	return nil
}
