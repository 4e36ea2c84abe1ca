package handler

import (
	"errors"
	"net/http"

	apperrors "go-gin-concert-booking/pkg/app_errors"
	"go-gin-concert-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// idUri 路徑上的數字 id
type idUri struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// statusOf 依錯誤分類決定 HTTP 狀態碼
func statusOf(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindAuthorization:
		return http.StatusForbidden
	case apperrors.KindBusinessRule:
		return http.StatusConflict
	case apperrors.KindConcurrency:
		if errors.Is(err, apperrors.ErrLockNotAcquired) {
			return http.StatusLocked
		}
		return http.StatusConflict
	case apperrors.KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(
		zap.String("operation", operation),
		zap.String("kind", apperrors.KindOf(err).String()),
		zap.Error(err),
	)

	status := statusOf(err)
	if status == http.StatusInternalServerError {
		log.Error("Unexpected error")
		c.JSON(status, gin.H{
			"error": "Internal server error",
		})
		return
	}

	// 只回傳分類錯誤本身的訊息，不帶出包裝鏈
	message := err.Error()
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	log.Warn("Request rejected")
	c.JSON(status, gin.H{
		"error": message,
		"kind":  apperrors.KindOf(err).String(),
	})
}

func handleSuccess(c *gin.Context, data interface{}, statusCode int) {
	if data != nil {
		c.JSON(statusCode, data)
	} else {
		c.Status(statusCode)
	}
}
