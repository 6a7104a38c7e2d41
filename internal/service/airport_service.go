package service

import (
	"context"

	"go-airport-booking/internal/cache"
	"go-airport-booking/internal/model"
	"go-airport-booking/internal/repository"
	"go-airport-booking/pkg/logger"

	"go.uber.org/zap"
)

type AirportService interface {
	List(ctx context.Context) ([]*model.Airport, error)
	GetByID(ctx context.Context, id int) (*model.Airport, error)
	Create(ctx context.Context, req *model.AirportRequest) (*model.Airport, error)
	Update(ctx context.Context, id int, req *model.AirportRequest) (*model.Airport, error)
	Delete(ctx context.Context, id int) error
}

type AirportServiceImpl struct {
	airports repository.AirportRepository
	cache    cache.ReferenceCache
	log      *zap.Logger
}

func NewAirportService(airports repository.AirportRepository, refCache cache.ReferenceCache) AirportService {
	return &AirportServiceImpl{
		airports: airports,
		cache:    refCache,
		log:      logger.WithComponent("airport_service"),
	}
}

func (s *AirportServiceImpl) List(ctx context.Context) ([]*model.Airport, error) {
	var cached []*model.Airport
	hit, err := s.cache.GetList(ctx, cache.KeyAirports, &cached)
	if err != nil {
		s.log.Warn("Cache read failed, falling back to database", zap.Error(err))
	} else if hit {
		return cached, nil
	}

	airports, err := s.airports.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetList(ctx, cache.KeyAirports, airports); err != nil {
		s.log.Warn("Cache write failed", zap.Error(err))
	}

	return airports, nil
}

func (s *AirportServiceImpl) GetByID(ctx context.Context, id int) (*model.Airport, error) {
	return s.airports.FindByID(ctx, id)
}

func (s *AirportServiceImpl) Create(ctx context.Context, req *model.AirportRequest) (*model.Airport, error) {
	airport := &model.Airport{
		Name:           req.Name,
		ClosestBigCity: req.ClosestBigCity,
	}

	created, err := s.airports.Create(ctx, airport)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, cache.KeyAirports)
	return created, nil
}

func (s *AirportServiceImpl) Update(ctx context.Context, id int, req *model.AirportRequest) (*model.Airport, error) {
	airport := &model.Airport{
		ID:             id,
		Name:           req.Name,
		ClosestBigCity: req.ClosestBigCity,
	}

	updated, err := s.airports.Update(ctx, airport)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, cache.KeyAirports)
	return updated, nil
}

func (s *AirportServiceImpl) Delete(ctx context.Context, id int) error {
	if err := s.airports.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, cache.KeyAirports)
	return nil
}
