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

func setupRouteTestRouter(mockService *mocks.RouteServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	routeHandler := handler.NewRouteHandler(mockService)

	authed := router.Group("/api/v1", injectIdentity(1, model.RoleAdmin))
	admin := authed.Group("")
	routeHandler.RegisterRoutes(authed, admin)

	return router
}

func TestListRoutes(t *testing.T) {
	t.Run("Success - city filters forwarded", func(t *testing.T) {
		mockService := mocks.NewRouteServiceMock()
		router := setupRouteTestRouter(mockService)

		expected := model.RouteFilter{Source: "London", Destination: "New York"}
		mockService.On("List", mock.Anything, expected).Return([]*model.Route{}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/routes?source=London&destination=New+York", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestCreateRoute(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewRouteServiceMock()
		router := setupRouteTestRouter(mockService)

		mockService.On("Create", mock.Anything, mock.Anything).
			Return(&model.Route{ID: 1, SourceID: 1, DestinationID: 2, Distance: 500}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/routes", model.RouteRequest{
			SourceID: 1, DestinationID: 2, Distance: 500,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - same endpoints", func(t *testing.T) {
		mockService := mocks.NewRouteServiceMock()
		router := setupRouteTestRouter(mockService)

		mockService.On("Create", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewValidationError("destination", "source and destination must differ")).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/routes", model.RouteRequest{
			SourceID: 1, DestinationID: 1, Distance: 500,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"destination": "source and destination must differ"}`, w.Body.String())
	})

	t.Run("Failed - ErrDuplicateRoute", func(t *testing.T) {
		mockService := mocks.NewRouteServiceMock()
		router := setupRouteTestRouter(mockService)

		mockService.On("Create", mock.Anything, mock.Anything).Return(nil, apperrors.ErrDuplicateRoute).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/routes", model.RouteRequest{
			SourceID: 1, DestinationID: 2, Distance: 500,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - ErrAirportNotFound", func(t *testing.T) {
		mockService := mocks.NewRouteServiceMock()
		router := setupRouteTestRouter(mockService)

		mockService.On("Create", mock.Anything, mock.Anything).Return(nil, apperrors.ErrAirportNotFound).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/routes", model.RouteRequest{
			SourceID: 1, DestinationID: 99, Distance: 500,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		mockService := mocks.NewRouteServiceMock()
		router := setupRouteTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/v1/routes", InvalidJSON)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})
}

func TestDeleteRoute(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewRouteServiceMock()
		router := setupRouteTestRouter(mockService)

		mockService.On("Delete", mock.Anything, 1).Return(nil).Once()

		req := createJSONHTTPRequest("DELETE", "/api/v1/routes/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Failed - ErrRouteNotFound", func(t *testing.T) {
		mockService := mocks.NewRouteServiceMock()
		router := setupRouteTestRouter(mockService)

		mockService.On("Delete", mock.Anything, 99).Return(apperrors.ErrRouteNotFound).Once()

		req := createJSONHTTPRequest("DELETE", "/api/v1/routes/99", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
