package database

import (
	"errors"
	"fmt"

	apperrors "go-gin-concert-booking/pkg/app_errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// TranslateError 將鎖等待逾時與死結轉為可重試的併發錯誤，其他錯誤原樣返回
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if apperrors.KindOf(err) != apperrors.KindUnknown {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.LockNotAvailable, pgerrcode.DeadlockDetected:
			return fmt.Errorf("%w: %w", apperrors.ErrLockTimeout, err)
		}
	}
	return err
}

// IsUniqueViolation 檢查是否違反指定的唯一約束；constraint 為空時只比對錯誤碼
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
