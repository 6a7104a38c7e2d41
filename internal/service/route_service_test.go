package service_test

import (
	"context"
	"testing"

	"go-airport-booking/internal/model"
	repoMocks "go-airport-booking/internal/repository/mocks"
	"go-airport-booking/internal/service"
	apperrors "go-airport-booking/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRouteService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		routeRepo := repoMocks.NewRouteRepositoryMock()
		svc := service.NewRouteService(routeRepo)

		expected := &model.Route{ID: 1, SourceID: 1, DestinationID: 2, Distance: 500}
		routeRepo.On("Create", ctx, mock.Anything).Return(expected, nil).Once()

		route, err := svc.Create(ctx, &model.RouteRequest{SourceID: 1, DestinationID: 2, Distance: 500})

		require.NoError(t, err)
		assert.Equal(t, expected, route)
		routeRepo.AssertExpectations(t)
	})

	t.Run("Failed - source equals destination", func(t *testing.T) {
		routeRepo := repoMocks.NewRouteRepositoryMock()
		svc := service.NewRouteService(routeRepo)

		_, err := svc.Create(ctx, &model.RouteRequest{SourceID: 1, DestinationID: 1, Distance: 500})

		require.Error(t, err)
		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "destination", verr.Field)
		routeRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - ErrDuplicateRoute", func(t *testing.T) {
		routeRepo := repoMocks.NewRouteRepositoryMock()
		svc := service.NewRouteService(routeRepo)

		routeRepo.On("Create", ctx, mock.Anything).Return(nil, apperrors.ErrDuplicateRoute).Once()

		_, err := svc.Create(ctx, &model.RouteRequest{SourceID: 1, DestinationID: 2, Distance: 500})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateRoute)
	})
}

func TestRouteService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Failed - source equals destination", func(t *testing.T) {
		routeRepo := repoMocks.NewRouteRepositoryMock()
		svc := service.NewRouteService(routeRepo)

		_, err := svc.Update(ctx, 1, &model.RouteRequest{SourceID: 3, DestinationID: 3, Distance: 500})

		require.Error(t, err)
		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
		routeRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Success", func(t *testing.T) {
		routeRepo := repoMocks.NewRouteRepositoryMock()
		svc := service.NewRouteService(routeRepo)

		expected := &model.Route{ID: 1, SourceID: 1, DestinationID: 2, Distance: 750}
		routeRepo.On("Update", ctx, mock.Anything).Return(expected, nil).Once()

		route, err := svc.Update(ctx, 1, &model.RouteRequest{SourceID: 1, DestinationID: 2, Distance: 750})

		require.NoError(t, err)
		assert.Equal(t, expected, route)
		routeRepo.AssertExpectations(t)
	})
}
