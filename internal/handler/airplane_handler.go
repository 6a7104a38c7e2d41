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

type AirplaneHandler struct {
	service service.AirplaneService
}

func NewAirplaneHandler(service service.AirplaneService) *AirplaneHandler {
	return &AirplaneHandler{service: service}
}

func (h *AirplaneHandler) RegisterRoutes(authed, admin *gin.RouterGroup) {
	authed.GET("airplanes", h.List)
	authed.GET("airplanes/:id", h.Get)
	admin.POST("airplanes", h.Create)
	admin.PUT("airplanes/:id", h.Update)
	admin.DELETE("airplanes/:id", h.Delete)
}

func (h *AirplaneHandler) List(c *gin.Context) {
	airplanes, err := h.service.List(c, c.Query("airplane_type"))
	if err != nil {
		h.handleAirplaneError(c, err, "List")
		return
	}

	c.JSON(http.StatusOK, airplanes)
}

func (h *AirplaneHandler) Get(c *gin.Context) {
	id, err := IDParam(c)
	if err != nil {
		return
	}

	airplane, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleAirplaneError(c, err, "Get")
		return
	}

	c.JSON(http.StatusOK, airplane)
}

func (h *AirplaneHandler) Create(c *gin.Context) {
	var req model.AirplaneRequest

	if err := BindJson(c, &req); err != nil {
		return
	}

	airplane, err := h.service.Create(c, &req)
	if err != nil {
		h.handleAirplaneError(c, err, "Create")
		return
	}

	c.JSON(http.StatusCreated, airplane)
}

func (h *AirplaneHandler) Update(c *gin.Context) {
	id, err := IDParam(c)
	if err != nil {
		return
	}

	var req model.AirplaneRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	airplane, err := h.service.Update(c, id, &req)
	if err != nil {
		h.handleAirplaneError(c, err, "Update")
		return
	}

	c.JSON(http.StatusOK, airplane)
}

func (h *AirplaneHandler) Delete(c *gin.Context) {
	id, err := IDParam(c)
	if err != nil {
		return
	}

	if err := h.service.Delete(c, id); err != nil {
		h.handleAirplaneError(c, err, "Delete")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AirplaneHandler) handleAirplaneError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrAirplaneNotFound):
		log.Warn("Airplane not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Airplane not found",
		})
	case errors.Is(err, apperrors.ErrAirplaneTypeNotFound):
		log.Warn("Airplane type not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Airplane type not found",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
