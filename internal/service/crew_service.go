package service

import (
	"context"

	"go-airport-booking/internal/cache"
	"go-airport-booking/internal/model"
	"go-airport-booking/internal/repository"
	"go-airport-booking/pkg/logger"

	"go.uber.org/zap"
)

type CrewService interface {
	List(ctx context.Context) ([]*model.CrewResponse, error)
	GetByID(ctx context.Context, id int) (*model.CrewResponse, error)
	Create(ctx context.Context, req *model.CrewRequest) (*model.CrewResponse, error)
	Update(ctx context.Context, id int, req *model.CrewRequest) (*model.CrewResponse, error)
	Delete(ctx context.Context, id int) error
}

type CrewServiceImpl struct {
	crews repository.CrewRepository
	cache cache.ReferenceCache
	log   *zap.Logger
}

func NewCrewService(crews repository.CrewRepository, refCache cache.ReferenceCache) CrewService {
	return &CrewServiceImpl{
		crews: crews,
		cache: refCache,
		log:   logger.WithComponent("crew_service"),
	}
}

func (s *CrewServiceImpl) List(ctx context.Context) ([]*model.CrewResponse, error) {
	var cached []*model.CrewResponse
	hit, err := s.cache.GetList(ctx, cache.KeyCrews, &cached)
	if err != nil {
		s.log.Warn("Cache read failed, falling back to database", zap.Error(err))
	} else if hit {
		return cached, nil
	}

	crews, err := s.crews.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*model.CrewResponse, 0, len(crews))
	for _, crew := range crews {
		responses = append(responses, toCrewResponse(crew))
	}

	if err := s.cache.SetList(ctx, cache.KeyCrews, responses); err != nil {
		s.log.Warn("Cache write failed", zap.Error(err))
	}

	return responses, nil
}

func (s *CrewServiceImpl) GetByID(ctx context.Context, id int) (*model.CrewResponse, error) {
	crew, err := s.crews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toCrewResponse(crew), nil
}

func (s *CrewServiceImpl) Create(ctx context.Context, req *model.CrewRequest) (*model.CrewResponse, error) {
	created, err := s.crews.Create(ctx, &model.Crew{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, cache.KeyCrews)
	return toCrewResponse(created), nil
}

func (s *CrewServiceImpl) Update(ctx context.Context, id int, req *model.CrewRequest) (*model.CrewResponse, error) {
	updated, err := s.crews.Update(ctx, &model.Crew{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, cache.KeyCrews)
	return toCrewResponse(updated), nil
}

func (s *CrewServiceImpl) Delete(ctx context.Context, id int) error {
	if err := s.crews.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, cache.KeyCrews)
	return nil
}

func toCrewResponse(c *model.Crew) *model.CrewResponse {
	return &model.CrewResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName(),
	}
}
