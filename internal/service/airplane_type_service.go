package service

import (
	"context"

	"go-airport-booking/internal/cache"
	"go-airport-booking/internal/model"
	"go-airport-booking/internal/repository"
	"go-airport-booking/pkg/logger"

	"go.uber.org/zap"
)

type AirplaneTypeService interface {
	List(ctx context.Context, name string) ([]*model.AirplaneType, error)
	GetByID(ctx context.Context, id int) (*model.AirplaneType, error)
	Create(ctx context.Context, req *model.AirplaneTypeRequest) (*model.AirplaneType, error)
	Update(ctx context.Context, id int, req *model.AirplaneTypeRequest) (*model.AirplaneType, error)
	Delete(ctx context.Context, id int) error
}

type AirplaneTypeServiceImpl struct {
	types repository.AirplaneTypeRepository
	cache cache.ReferenceCache
	log   *zap.Logger
}

func NewAirplaneTypeService(types repository.AirplaneTypeRepository, refCache cache.ReferenceCache) AirplaneTypeService {
	return &AirplaneTypeServiceImpl{
		types: types,
		cache: refCache,
		log:   logger.WithComponent("airplane_type_service"),
	}
}

// List caches only the unfiltered listing; filtered reads go straight to
// the database.
func (s *AirplaneTypeServiceImpl) List(ctx context.Context, name string) ([]*model.AirplaneType, error) {
	if name != "" {
		return s.types.List(ctx, name)
	}

	var cached []*model.AirplaneType
	hit, err := s.cache.GetList(ctx, cache.KeyAirplaneTypes, &cached)
	if err != nil {
		s.log.Warn("Cache read failed, falling back to database", zap.Error(err))
	} else if hit {
		return cached, nil
	}

	types, err := s.types.List(ctx, "")
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetList(ctx, cache.KeyAirplaneTypes, types); err != nil {
		s.log.Warn("Cache write failed", zap.Error(err))
	}

	return types, nil
}

func (s *AirplaneTypeServiceImpl) GetByID(ctx context.Context, id int) (*model.AirplaneType, error) {
	return s.types.FindByID(ctx, id)
}

func (s *AirplaneTypeServiceImpl) Create(ctx context.Context, req *model.AirplaneTypeRequest) (*model.AirplaneType, error) {
	created, err := s.types.Create(ctx, &model.AirplaneType{Name: req.Name})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, cache.KeyAirplaneTypes)
	return created, nil
}

func (s *AirplaneTypeServiceImpl) Update(ctx context.Context, id int, req *model.AirplaneTypeRequest) (*model.AirplaneType, error) {
	updated, err := s.types.Update(ctx, &model.AirplaneType{ID: id, Name: req.Name})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, cache.KeyAirplaneTypes)
	return updated, nil
}

func (s *AirplaneTypeServiceImpl) Delete(ctx context.Context, id int) error {
	if err := s.types.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, cache.KeyAirplaneTypes)
	return nil
}
