package service_test

import (
	"context"
	"errors"
	"testing"

	"go-airport-booking/internal/cache"
	cacheMocks "go-airport-booking/internal/cache/mocks"
	"go-airport-booking/internal/model"
	repoMocks "go-airport-booking/internal/repository/mocks"
	"go-airport-booking/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAirportService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Cache miss populates the cache", func(t *testing.T) {
		airportRepo := repoMocks.NewAirportRepositoryMock()
		refCache := cacheMocks.NewReferenceCacheMock()
		svc := service.NewAirportService(airportRepo, refCache)

		airports := []*model.Airport{{ID: 1, Name: "Heathrow", ClosestBigCity: "London"}}

		refCache.On("GetList", ctx, cache.KeyAirports, mock.Anything).Return(false, nil).Once()
		airportRepo.On("List", ctx).Return(airports, nil).Once()
		refCache.On("SetList", ctx, cache.KeyAirports, airports).Return(nil).Once()

		result, err := svc.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, airports, result)
		refCache.AssertExpectations(t)
		airportRepo.AssertExpectations(t)
	})

	t.Run("Cache error falls back to the database", func(t *testing.T) {
		airportRepo := repoMocks.NewAirportRepositoryMock()
		refCache := cacheMocks.NewReferenceCacheMock()
		svc := service.NewAirportService(airportRepo, refCache)

		airports := []*model.Airport{{ID: 1, Name: "Heathrow", ClosestBigCity: "London"}}

		refCache.On("GetList", ctx, cache.KeyAirports, mock.Anything).Return(false, errors.New("redis down")).Once()
		airportRepo.On("List", ctx).Return(airports, nil).Once()
		refCache.On("SetList", ctx, cache.KeyAirports, airports).Return(errors.New("redis down")).Once()

		result, err := svc.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, airports, result)
	})
}

func TestAirportService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Write invalidates the cached listing", func(t *testing.T) {
		airportRepo := repoMocks.NewAirportRepositoryMock()
		refCache := cacheMocks.NewReferenceCacheMock()
		svc := service.NewAirportService(airportRepo, refCache)

		created := &model.Airport{ID: 1, Name: "Heathrow", ClosestBigCity: "London"}
		airportRepo.On("Create", ctx, mock.Anything).Return(created, nil).Once()
		refCache.On("Invalidate", ctx, cache.KeyAirports).Once()

		airport, err := svc.Create(ctx, &model.AirportRequest{Name: "Heathrow", ClosestBigCity: "London"})

		require.NoError(t, err)
		assert.Equal(t, created, airport)
		refCache.AssertExpectations(t)
	})

	t.Run("Failed create leaves the cache alone", func(t *testing.T) {
		airportRepo := repoMocks.NewAirportRepositoryMock()
		refCache := cacheMocks.NewReferenceCacheMock()
		svc := service.NewAirportService(airportRepo, refCache)

		airportRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("connection lost")).Once()

		_, err := svc.Create(ctx, &model.AirportRequest{Name: "Heathrow", ClosestBigCity: "London"})

		require.Error(t, err)
		refCache.AssertNotCalled(t, "Invalidate")
	})
}
