package handler

import (
	"net/http"

	"go-gin-concert-booking/internal/model"
	"go-gin-concert-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	saga    service.BookingSaga
	payment service.PaymentOrchestrator
}

func NewReservationHandler(saga service.BookingSaga, payment service.PaymentOrchestrator) *ReservationHandler {
	return &ReservationHandler{saga: saga, payment: payment}
}

func (h *ReservationHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("reservations", h.CreateReservation)
		router.GET("reservations/:id", h.GetReservation)
		router.POST("reservations/:id/cancel", h.CancelReservation)
		router.GET("reservations/:id/payment", h.GetPayment)
		router.POST("payments", h.ProcessPayment)
	}
}

func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req model.CreateReservationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	reservation, err := h.saga.CreateReservation(c, req)
	if err != nil {
		handleError(c, err, "CreateReservation")
		return
	}

	handleSuccess(c, model.NewReservationResponse(reservation), http.StatusCreated)
}

func (h *ReservationHandler) GetReservation(c *gin.Context) {
	var uri idUri
	if err := BindUri(c, &uri); err != nil {
		return
	}

	reservation, err := h.saga.GetReservation(c, uri.ID)
	if err != nil {
		handleError(c, err, "GetReservation")
		return
	}

	handleSuccess(c, reservation, http.StatusOK)
}

func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	var uri idUri
	if err := BindUri(c, &uri); err != nil {
		return
	}
	var req model.CancelReservationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	reservation, err := h.saga.CancelReservation(c, uri.ID, req.UserID)
	if err != nil {
		handleError(c, err, "CancelReservation")
		return
	}

	handleSuccess(c, model.NewReservationResponse(reservation), http.StatusOK)
}

func (h *ReservationHandler) ProcessPayment(c *gin.Context) {
	var req model.ProcessPaymentRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	payment, err := h.payment.ProcessPayment(c, req)
	if err != nil {
		handleError(c, err, "ProcessPayment")
		return
	}

	handleSuccess(c, model.NewPaymentResponse(payment), http.StatusCreated)
}

func (h *ReservationHandler) GetPayment(c *gin.Context) {
	var uri idUri
	if err := BindUri(c, &uri); err != nil {
		return
	}

	payment, err := h.payment.GetPayment(c, uri.ID)
	if err != nil {
		handleError(c, err, "GetPayment")
		return
	}

	handleSuccess(c, model.NewPaymentResponse(payment), http.StatusOK)
}
