package handler

import (
	"net/http"

	"go-gin-concert-booking/internal/model"
	"go-gin-concert-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type ConcertHandler struct {
	service service.ConcertService
}

func NewConcertHandler(service service.ConcertService) *ConcertHandler {
	return &ConcertHandler{service: service}
}

type rankingQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

func (h *ConcertHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("concerts", h.ListConcerts)
		router.GET("concerts/ranking", h.Ranking)
		router.GET("concerts/:id/schedules", h.ListSchedules)
		router.GET("schedules/:id/seats", h.ListSeats)
	}
}

func (h *ConcertHandler) ListConcerts(c *gin.Context) {
	concerts, err := h.service.ListConcerts(c)
	if err != nil {
		handleError(c, err, "ListConcerts")
		return
	}
	c.JSON(http.StatusOK, concerts)
}

func (h *ConcertHandler) ListSchedules(c *gin.Context) {
	var uri idUri
	if err := BindUri(c, &uri); err != nil {
		return
	}

	schedules, err := h.service.ListSchedules(c, uri.ID)
	if err != nil {
		handleError(c, err, "ListSchedules")
		return
	}
	c.JSON(http.StatusOK, schedules)
}

func (h *ConcertHandler) ListSeats(c *gin.Context) {
	var uri idUri
	if err := BindUri(c, &uri); err != nil {
		return
	}
	var query model.ListSeatsQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	seats, err := h.service.ListSeats(c, uri.ID, query.AvailableOnly)
	if err != nil {
		handleError(c, err, "ListSeats")
		return
	}
	c.JSON(http.StatusOK, seats)
}

func (h *ConcertHandler) Ranking(c *gin.Context) {
	var query rankingQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	top, err := h.service.Ranking(c, query.Limit)
	if err != nil {
		handleError(c, err, "ConcertRanking")
		return
	}
	c.JSON(http.StatusOK, top)
}
