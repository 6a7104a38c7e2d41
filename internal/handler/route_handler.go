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

type RouteHandler struct {
	service service.RouteService
}

func NewRouteHandler(service service.RouteService) *RouteHandler {
	return &RouteHandler{service: service}
}

func (h *RouteHandler) RegisterRoutes(authed, admin *gin.RouterGroup) {
	authed.GET("routes", h.List)
	authed.GET("routes/:id", h.Get)
	admin.POST("routes", h.Create)
	admin.PUT("routes/:id", h.Update)
	admin.DELETE("routes/:id", h.Delete)
}

func (h *RouteHandler) List(c *gin.Context) {
	filter := model.RouteFilter{
		Source:      c.Query("source"),
		Destination: c.Query("destination"),
	}

	routes, err := h.service.List(c, filter)
	if err != nil {
		h.handleRouteError(c, err, "List")
		return
	}

	c.JSON(http.StatusOK, routes)
}

func (h *RouteHandler) Get(c *gin.Context) {
	id, err := IDParam(c)
	if err != nil {
		return
	}

	route, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleRouteError(c, err, "Get")
		return
	}

	c.JSON(http.StatusOK, route)
}

func (h *RouteHandler) Create(c *gin.Context) {
	var req model.RouteRequest

	if err := BindJson(c, &req); err != nil {
		return
	}

	route, err := h.service.Create(c, &req)
	if err != nil {
		h.handleRouteError(c, err, "Create")
		return
	}

	c.JSON(http.StatusCreated, route)
}

func (h *RouteHandler) Update(c *gin.Context) {
	id, err := IDParam(c)
	if err != nil {
		return
	}

	var req model.RouteRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	route, err := h.service.Update(c, id, &req)
	if err != nil {
		h.handleRouteError(c, err, "Update")
		return
	}

	c.JSON(http.StatusOK, route)
}

func (h *RouteHandler) Delete(c *gin.Context) {
	id, err := IDParam(c)
	if err != nil {
		return
	}

	if err := h.service.Delete(c, id); err != nil {
		h.handleRouteError(c, err, "Delete")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RouteHandler) handleRouteError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	if respondValidationError(c, err) {
		log.Warn("Validation failed")
		return
	}
	switch {
	case errors.Is(err, apperrors.ErrRouteNotFound):
		log.Warn("Route not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
		})
	case errors.Is(err, apperrors.ErrAirportNotFound):
		log.Warn("Airport not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Airport not found",
		})
	case errors.Is(err, apperrors.ErrDuplicateRoute):
		log.Warn("Duplicate route")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Route already exists",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
