package handler

import (
	"errors"
	"net/http"
	"time"

	"go-airport-booking/internal/model"
	"go-airport-booking/internal/service"
	apperrors "go-airport-booking/pkg/app_errors"
	"go-airport-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FlightHandler struct {
	service service.FlightService
}

func NewFlightHandler(service service.FlightService) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) RegisterRoutes(authed, admin *gin.RouterGroup) {
	authed.GET("flights", h.List)
	authed.GET("flights/:id", h.Get)
	admin.POST("flights", h.Create)
	admin.PUT("flights/:id", h.Update)
	admin.DELETE("flights/:id", h.Delete)
}

func (h *FlightHandler) List(c *gin.Context) {
	filter := model.FlightFilter{
		Source:      c.Query("source"),
		Destination: c.Query("destination"),
	}

	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
			return
		}
		filter.Date = &date
	}

	flights, err := h.service.List(c, filter)
	if err != nil {
		h.handleFlightError(c, err, "List")
		return
	}

	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) Get(c *gin.Context) {
	id, err := IDParam(c)
	if err != nil {
		return
	}

	flight, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleFlightError(c, err, "Get")
		return
	}

	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) Create(c *gin.Context) {
	var req model.FlightRequest

	if err := BindJson(c, &req); err != nil {
		return
	}

	flight, err := h.service.Create(c, &req)
	if err != nil {
		h.handleFlightError(c, err, "Create")
		return
	}

	c.JSON(http.StatusCreated, flight)
}

func (h *FlightHandler) Update(c *gin.Context) {
	id, err := IDParam(c)
	if err != nil {
		return
	}

	var req model.FlightRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	flight, err := h.service.Update(c, id, &req)
	if err != nil {
		h.handleFlightError(c, err, "Update")
		return
	}

	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) Delete(c *gin.Context) {
	id, err := IDParam(c)
	if err != nil {
		return
	}

	if err := h.service.Delete(c, id); err != nil {
		h.handleFlightError(c, err, "Delete")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *FlightHandler) handleFlightError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrFlightNotFound):
		log.Warn("Flight not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Flight not found",
		})
	case errors.Is(err, apperrors.ErrRouteNotFound):
		log.Warn("Route not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
		})
	case errors.Is(err, apperrors.ErrAirplaneNotFound):
		log.Warn("Airplane not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Airplane not found",
		})
	case errors.Is(err, apperrors.ErrCrewNotFound):
		log.Warn("Crew not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Crew not found",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
