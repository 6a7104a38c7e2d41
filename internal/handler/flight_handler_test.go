package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-airport-booking/internal/handler"
	"go-airport-booking/internal/model"
	"go-airport-booking/internal/service/mocks"
	apperrors "go-airport-booking/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupFlightTestRouter(mockService *mocks.FlightServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	flightHandler := handler.NewFlightHandler(mockService)

	authed := router.Group("/api/v1", injectIdentity(1, model.RoleUser))
	admin := authed.Group("")
	flightHandler.RegisterRoutes(authed, admin)

	return router
}

func TestListFlights(t *testing.T) {
	t.Run("Success - no filters", func(t *testing.T) {
		mockService := mocks.NewFlightServiceMock()
		router := setupFlightTestRouter(mockService)

		mockService.On("List", mock.Anything, model.FlightFilter{}).
			Return([]*model.FlightListItem{{ID: 1, TicketsAvailable: 60}}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/flights", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Success - date and name filters parsed", func(t *testing.T) {
		mockService := mocks.NewFlightServiceMock()
		router := setupFlightTestRouter(mockService)

		date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		expected := model.FlightFilter{Date: &date, Source: "Heath", Destination: "JFK"}
		mockService.On("List", mock.Anything, expected).
			Return([]*model.FlightListItem{}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/flights?date=2026-09-01&source=Heath&destination=JFK", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - malformed date", func(t *testing.T) {
		mockService := mocks.NewFlightServiceMock()
		router := setupFlightTestRouter(mockService)

		req := createJSONHTTPRequest("GET", "/api/v1/flights?date=09-01-2026", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "List")
	})
}

func TestGetFlight(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewFlightServiceMock()
		router := setupFlightTestRouter(mockService)

		mockService.On("GetByID", mock.Anything, 1).Return(&model.FlightDetail{
			ID:               1,
			TicketsAvailable: 58,
			TakenSeats:       []model.Seat{{Row: 1, Seat: 1}, {Row: 2, Seat: 3}},
		}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/flights/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrFlightNotFound", func(t *testing.T) {
		mockService := mocks.NewFlightServiceMock()
		router := setupFlightTestRouter(mockService)

		mockService.On("GetByID", mock.Anything, 99).Return(nil, apperrors.ErrFlightNotFound).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/flights/99", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failed - non-numeric id", func(t *testing.T) {
		mockService := mocks.NewFlightServiceMock()
		router := setupFlightTestRouter(mockService)

		req := createJSONHTTPRequest("GET", "/api/v1/flights/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "GetByID")
	})
}
