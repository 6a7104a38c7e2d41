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

type CrewHandler struct {
	service service.CrewService
}

func NewCrewHandler(service service.CrewService) *CrewHandler {
	return &CrewHandler{service: service}
}

func (h *CrewHandler) RegisterRoutes(authed, admin *gin.RouterGroup) {
	authed.GET("crews", h.List)
	authed.GET("crews/:id", h.Get)
	admin.POST("crews", h.Create)
	admin.PUT("crews/:id", h.Update)
	admin.DELETE("crews/:id", h.Delete)
}

func (h *CrewHandler) List(c *gin.Context) {
	crews, err := h.service.List(c)
	if err != nil {
		h.handleCrewError(c, err, "List")
		return
	}

	c.JSON(http.StatusOK, crews)
}

func (h *CrewHandler) Get(c *gin.Context) {
	id, err := IDParam(c)
	if err != nil {
		return
	}

	crew, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleCrewError(c, err, "Get")
		return
	}

	c.JSON(http.StatusOK, crew)
}

func (h *CrewHandler) Create(c *gin.Context) {
	var req model.CrewRequest

	if err := BindJson(c, &req); err != nil {
		return
	}

	crew, err := h.service.Create(c, &req)
	if err != nil {
		h.handleCrewError(c, err, "Create")
		return
	}

	c.JSON(http.StatusCreated, crew)
}

func (h *CrewHandler) Update(c *gin.Context) {
	id, err := IDParam(c)
	if err != nil {
		return
	}

	var req model.CrewRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	crew, err := h.service.Update(c, id, &req)
	if err != nil {
		h.handleCrewError(c, err, "Update")
		return
	}

	c.JSON(http.StatusOK, crew)
}

func (h *CrewHandler) Delete(c *gin.Context) {
	id, err := IDParam(c)
	if err != nil {
		return
	}

	if err := h.service.Delete(c, id); err != nil {
		h.handleCrewError(c, err, "Delete")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CrewHandler) handleCrewError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
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
