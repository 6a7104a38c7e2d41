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

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(service service.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) RegisterRoutes(authed *gin.RouterGroup) {
	authed.GET("orders", h.ListOrders)
	authed.POST("orders", h.CreateOrder)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req model.CreateOrderRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	order, err := h.service.CreateOrder(c, userID, &req)
	if err != nil {
		h.handleOrderError(c, err, "CreateOrder")
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	orders, err := h.service.ListOrders(c, userID)
	if err != nil {
		h.handleOrderError(c, err, "ListOrders")
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) handleOrderError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	if respondValidationError(c, err) {
		log.Warn("Validation failed")
		return
	}
	switch {
	case errors.Is(err, apperrors.ErrSeatTaken):
		log.Warn("Seat already taken")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Seat already taken",
		})
	case errors.Is(err, apperrors.ErrFlightNotFound):
		log.Warn("Flight not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Flight not found",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
