package handler

import (
	"net/http"

	"go-gin-concert-booking/internal/model"
	"go-gin-concert-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type PointHandler struct {
	ledger service.PointLedger
}

func NewPointHandler(ledger service.PointLedger) *PointHandler {
	return &PointHandler{ledger: ledger}
}

type userUri struct {
	UserID int64 `uri:"userId" binding:"required,min=1"`
}

func (h *PointHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("points/charge", h.Charge)
		router.GET("points/:userId", h.GetBalance)
		router.GET("points/:userId/histories", h.Histories)
	}
}

func (h *PointHandler) Charge(c *gin.Context) {
	var req model.ChargePointRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	account, err := h.ledger.Charge(c, req.UserID, req.Amount)
	if err != nil {
		handleError(c, err, "ChargePoints")
		return
	}

	handleSuccess(c, &model.BalanceResponse{UserID: account.UserID, Balance: account.Balance}, http.StatusOK)
}

func (h *PointHandler) GetBalance(c *gin.Context) {
	var uri userUri
	if err := BindUri(c, &uri); err != nil {
		return
	}

	account, err := h.ledger.GetBalance(c, uri.UserID)
	if err != nil {
		handleError(c, err, "GetBalance")
		return
	}

	handleSuccess(c, &model.BalanceResponse{UserID: account.UserID, Balance: account.Balance}, http.StatusOK)
}

func (h *PointHandler) Histories(c *gin.Context) {
	var uri userUri
	if err := BindUri(c, &uri); err != nil {
		return
	}

	histories, err := h.ledger.Histories(c, uri.UserID)
	if err != nil {
		handleError(c, err, "PointHistories")
		return
	}

	handleSuccess(c, histories, http.StatusOK)
}
