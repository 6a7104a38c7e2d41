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

type AirplaneTypeHandler struct {
	service service.AirplaneTypeService
}

func NewAirplaneTypeHandler(service service.AirplaneTypeService) *AirplaneTypeHandler {
	return &AirplaneTypeHandler{service: service}
}

func (h *AirplaneTypeHandler) RegisterRoutes(authed, admin *gin.RouterGroup) {
	authed.GET("airplane-types", h.List)
	authed.GET("airplane-types/:id", h.Get)
	admin.POST("airplane-types", h.Create)
	admin.PUT("airplane-types/:id", h.Update)
	admin.DELETE("airplane-types/:id", h.Delete)
}

func (h *AirplaneTypeHandler) List(c *gin.Context) {
	types, err := h.service.List(c, c.Query("name"))
	if err != nil {
		h.handleTypeError(c, err, "List")
		return
	}

	c.JSON(http.StatusOK, types)
}

func (h *AirplaneTypeHandler) Get(c *gin.Context) {
	id, err := IDParam(c)
	if err != nil {
		return
	}

	airplaneType, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleTypeError(c, err, "Get")
		return
	}

	c.JSON(http.StatusOK, airplaneType)
}

func (h *AirplaneTypeHandler) Create(c *gin.Context) {
	var req model.AirplaneTypeRequest

	if err := BindJson(c, &req); err != nil {
		return
	}

	airplaneType, err := h.service.Create(c, &req)
	if err != nil {
		h.handleTypeError(c, err, "Create")
		return
	}

	c.JSON(http.StatusCreated, airplaneType)
}

func (h *AirplaneTypeHandler) Update(c *gin.Context) {
	id, err := IDParam(c)
	if err != nil {
		return
	}

	var req model.AirplaneTypeRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	airplaneType, err := h.service.Update(c, id, &req)
	if err != nil {
		h.handleTypeError(c, err, "Update")
		return
	}

	c.JSON(http.StatusOK, airplaneType)
}

func (h *AirplaneTypeHandler) Delete(c *gin.Context) {
	id, err := IDParam(c)
	if err != nil {
		return
	}

	if err := h.service.Delete(c, id); err != nil {
		h.handleTypeError(c, err, "Delete")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AirplaneTypeHandler) handleTypeError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
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
