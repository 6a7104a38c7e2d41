package handler

import (
	"errors"
	"net/http"

	"go-airport-booking/internal/model"
	"go-airport-booking/internal/service"
	apperrors "go-airport-booking/pkg/app_errors"
	"go-airport-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AirportHandler struct {
	service service.AirportService
}

func NewAirportHandler(service service.AirportService) *AirportHandler {
	return &AirportHandler{service: service}
}

// Reads are registered on the authenticated group, writes on the admin
// group.
func (h *AirportHandler) RegisterRoutes(authed, admin *gin.RouterGroup) {
	authed.GET("airports", h.List)
	authed.GET("airports/:id", h.Get)
	admin.POST("airports", h.Create)
	admin.PUT("airports/:id", h.Update)
	admin.DELETE("airports/:id", h.Delete)
}

func (h *AirportHandler) List(c *gin.Context) {
	airports, err := h.service.List(c)
	if err != nil {
		h.handleAirportError(c, err, "List")
		return
	}

	c.JSON(http.StatusOK, airports)
}

func (h *AirportHandler) Get(c *gin.Context) {
	id, err := IDParam(c)
	if err != nil {
		return
	}

	airport, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleAirportError(c, err, "Get")
		return
	}

	c.JSON(http.StatusOK, airport)
}

func (h *AirportHandler) Create(c *gin.Context) {
	var req model.AirportRequest

	if err := BindJson(c, &req); err != nil {
		return
	}

	airport, err := h.service.Create(c, &req)
	if err != nil {
		h.handleAirportError(c, err, "Create")
		return
	}

	c.JSON(http.StatusCreated, airport)
}

func (h *AirportHandler) Update(c *gin.Context) {
	id, err := IDParam(c)
	if err != nil {
		return
	}

	var req model.AirportRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	airport, err := h.service.Update(c, id, &req)
	if err != nil {
		h.handleAirportError(c, err, "Update")
		return
	}

	c.JSON(http.StatusOK, airport)
}

func (h *AirportHandler) Delete(c *gin.Context) {
	id, err := IDParam(c)
	if err != nil {
		return
	}

	if err := h.service.Delete(c, id); err != nil {
		h.handleAirportError(c, err, "Delete")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AirportHandler) handleAirportError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrAirportNotFound):
		log.Warn("Airport not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Airport not found",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
