package handler

import (
	"net/http"

	"go-gin-concert-booking/internal/model"
	"go-gin-concert-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type QueueHandler struct {
	service service.QueueService
}

func NewQueueHandler(service service.QueueService) *QueueHandler {
	return &QueueHandler{service: service}
}

func (h *QueueHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("queue/tokens", h.IssueToken)
		router.GET("queue/tokens/:token", h.GetStatus)
		router.GET("queue/stats", h.Stats)
	}
}

func (h *QueueHandler) IssueToken(c *gin.Context) {
	var req model.IssueTokenRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	token, err := h.service.IssueToken(c, req.UserID)
	if err != nil {
		handleError(c, err, "IssueToken")
		return
	}

	handleSuccess(c, &model.IssueTokenResponse{
		Token:     token.Token,
		Status:    token.Status,
		Position:  token.Position,
		CreatedAt: token.CreatedAt,
	}, http.StatusCreated)
}

func (h *QueueHandler) GetStatus(c *gin.Context) {
	status, err := h.service.GetStatus(c, c.Param("token"))
	if err != nil {
		handleError(c, err, "GetQueueStatus")
		return
	}

	handleSuccess(c, status, http.StatusOK)
}

func (h *QueueHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c)
	if err != nil {
		handleError(c, err, "QueueStats")
		return
	}

	handleSuccess(c, stats, http.StatusOK)
}
