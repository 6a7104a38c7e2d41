package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-airport-booking/internal/handler"
	"go-airport-booking/internal/model"
	"go-airport-booking/internal/service/mocks"
	apperrors "go-airport-booking/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupOrderTestRouter(mockService *mocks.OrderServiceMock, userID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	orderHandler := handler.NewOrderHandler(mockService)

	authed := router.Group("/api/v1", injectIdentity(userID, model.RoleUser))
	orderHandler.RegisterRoutes(authed)

	return router
}

func TestCreateOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewOrderServiceMock()
		router := setupOrderTestRouter(mockService, 1)

		mockService.On("CreateOrder", mock.Anything, 1, mock.Anything).Return(&model.Order{
			ID:     1,
			UserID: 1,
			Tickets: []*model.Ticket{
				{ID: 1, Row: 2, Seat: 4, FlightID: 3, OrderID: 1},
			},
		}, nil).Once()

		createOrderRequest := model.CreateOrderRequest{Tickets: []model.TicketRequest{
			{Row: 2, Seat: 4, FlightID: 3},
		}}

		req := createJSONHTTPRequest("POST", "/api/v1/orders", createOrderRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - validation error", func(t *testing.T) {
		mockService := mocks.NewOrderServiceMock()
		router := setupOrderTestRouter(mockService, 1)

		mockService.On("CreateOrder", mock.Anything, 1, mock.Anything).
			Return(nil, apperrors.NewValidationError("tickets", "must supply at least one ticket")).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/orders", model.CreateOrderRequest{})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"tickets": "must supply at least one ticket"}`, w.Body.String())
	})

	t.Run("Failed - ErrSeatTaken", func(t *testing.T) {
		mockService := mocks.NewOrderServiceMock()
		router := setupOrderTestRouter(mockService, 1)

		mockService.On("CreateOrder", mock.Anything, 1, mock.Anything).Return(nil, apperrors.ErrSeatTaken).Once()

		createOrderRequest := model.CreateOrderRequest{Tickets: []model.TicketRequest{
			{Row: 2, Seat: 4, FlightID: 3},
		}}

		req := createJSONHTTPRequest("POST", "/api/v1/orders", createOrderRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - ErrFlightNotFound", func(t *testing.T) {
		mockService := mocks.NewOrderServiceMock()
		router := setupOrderTestRouter(mockService, 1)

		mockService.On("CreateOrder", mock.Anything, 1, mock.Anything).Return(nil, apperrors.ErrFlightNotFound).Once()

		createOrderRequest := model.CreateOrderRequest{Tickets: []model.TicketRequest{
			{Row: 2, Seat: 4, FlightID: 99},
		}}

		req := createJSONHTTPRequest("POST", "/api/v1/orders", createOrderRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		mockService := mocks.NewOrderServiceMock()
		router := setupOrderTestRouter(mockService, 1)

		req := createJSONHTTPRequest("POST", "/api/v1/orders", InvalidJSON)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "CreateOrder")
	})
}

func TestListOrders(t *testing.T) {
	t.Run("Success - scoped to the caller", func(t *testing.T) {
		mockService := mocks.NewOrderServiceMock()
		router := setupOrderTestRouter(mockService, 42)

		mockService.On("ListOrders", mock.Anything, 42).Return([]*model.Order{
			{ID: 1, UserID: 42, Tickets: []*model.Ticket{}},
		}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/orders", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - no identity", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		mockService := mocks.NewOrderServiceMock()
		router := gin.New()
		handler.NewOrderHandler(mockService).RegisterRoutes(router.Group("/api/v1"))

		req := createJSONHTTPRequest("GET", "/api/v1/orders", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "ListOrders")
	})
}
