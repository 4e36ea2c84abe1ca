package apperrors

import "errors"

// Kind 錯誤分類，決定 HTTP 狀態碼與是否可重試
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindAuthorization
	KindBusinessRule
	KindConcurrency
	KindInvalidInput
	KindInfrastructure
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAuthorization:
		return "authorization"
	case KindBusinessRule:
		return "business_rule"
	case KindConcurrency:
		return "concurrency"
	case KindInvalidInput:
		return "invalid_input"
	case KindInfrastructure:
		return "infrastructure"
	default:
		return "unknown"
	}
}

// Error 帶分類的 sentinel error，以指標比較，可搭配 errors.Is 使用
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

var (
	// NotFound
	ErrUserNotFound         = newError(KindNotFound, "user not found")
	ErrConcertNotFound      = newError(KindNotFound, "concert not found")
	ErrScheduleNotFound     = newError(KindNotFound, "schedule not found")
	ErrSeatNotFound         = newError(KindNotFound, "seat not found")
	ErrReservationNotFound  = newError(KindNotFound, "reservation not found")
	ErrPointAccountNotFound = newError(KindNotFound, "point account not found")
	ErrTokenNotFound        = newError(KindNotFound, "queue token not found")
	ErrPaymentNotFound      = newError(KindNotFound, "payment not found")

	// Authorization
	ErrTokenNotActive      = newError(KindAuthorization, "queue token is not active")
	ErrTokenExpired        = newError(KindAuthorization, "queue token expired")
	ErrTokenNotOwned       = newError(KindAuthorization, "queue token belongs to another user")
	ErrReservationNotOwned = newError(KindAuthorization, "reservation belongs to another user")

	// BusinessRule
	ErrSeatNotAvailable            = newError(KindBusinessRule, "seat not available")
	ErrSeatNotInSchedule           = newError(KindBusinessRule, "seat does not belong to schedule")
	ErrInvalidSeatStatus           = newError(KindBusinessRule, "invalid seat status transition")
	ErrScheduleClosed              = newError(KindBusinessRule, "schedule is not open for sale")
	ErrInsufficientBalance         = newError(KindBusinessRule, "insufficient balance")
	ErrReservationAlreadyConfirmed = newError(KindBusinessRule, "reservation already confirmed")
	ErrReservationNotPayable       = newError(KindBusinessRule, "reservation is not payable")
	ErrReservationExpired          = newError(KindBusinessRule, "reservation hold expired")
	ErrReservationNotCancelable    = newError(KindBusinessRule, "reservation cannot be canceled")
	ErrAlreadyPaid                 = newError(KindBusinessRule, "reservation already paid")

	// Concurrency
	ErrLockTimeout     = newError(KindConcurrency, "lock wait timeout exceeded")
	ErrLockNotAcquired = newError(KindConcurrency, "could not acquire lock")

	// InvalidInput
	ErrInvalidAmount = newError(KindInvalidInput, "invalid amount")
	ErrInvalidInput  = newError(KindInvalidInput, "invalid input")

	// Infrastructure
	ErrInternalServerError = newError(KindInfrastructure, "internal server error")
	ErrPublisherBusy       = newError(KindInfrastructure, "event publisher inbox is full")
)

// KindOf 取出錯誤鏈中第一個分類；非 apperrors 錯誤視為 KindUnknown
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// IsRetryable 只有併發衝突可以重試
func IsRetryable(err error) bool {
	return KindOf(err) == KindConcurrency
}
