package service

import (
	"context"

	"go-airport-booking/internal/model"
	"go-airport-booking/internal/repository"
	apperrors "go-airport-booking/pkg/app_errors"
)

type RouteService interface {
	List(ctx context.Context, filter model.RouteFilter) ([]*model.Route, error)
	GetByID(ctx context.Context, id int) (*model.Route, error)
	Create(ctx context.Context, req *model.RouteRequest) (*model.Route, error)
	Update(ctx context.Context, id int, req *model.RouteRequest) (*model.Route, error)
	Delete(ctx context.Context, id int) error
}

type RouteServiceImpl struct {
	routes repository.RouteRepository
}

func NewRouteService(routes repository.RouteRepository) RouteService {
	return &RouteServiceImpl{
		routes: routes,
	}
}

func (s *RouteServiceImpl) List(ctx context.Context, filter model.RouteFilter) ([]*model.Route, error) {
	return s.routes.List(ctx, filter)
}

func (s *RouteServiceImpl) GetByID(ctx context.Context, id int) (*model.Route, error) {
	return s.routes.FindByID(ctx, id)
}

func (s *RouteServiceImpl) Create(ctx context.Context, req *model.RouteRequest) (*model.Route, error) {
	if err := validateRouteEndpoints(req); err != nil {
		return nil, err
	}

	route := &model.Route{
		SourceID:      req.SourceID,
		DestinationID: req.DestinationID,
		Distance:      req.Distance,
	}

	return s.routes.Create(ctx, route)
}

func (s *RouteServiceImpl) Update(ctx context.Context, id int, req *model.RouteRequest) (*model.Route, error) {
	if err := validateRouteEndpoints(req); err != nil {
		return nil, err
	}

	route := &model.Route{
		ID:            id,
		SourceID:      req.SourceID,
		DestinationID: req.DestinationID,
		Distance:      req.Distance,
	}

	return s.routes.Update(ctx, route)
}

func (s *RouteServiceImpl) Delete(ctx context.Context, id int) error {
	return s.routes.Delete(ctx, id)
}

// A route must connect two distinct airports.
func validateRouteEndpoints(req *model.RouteRequest) error {
	if req.SourceID == req.DestinationID {
		return apperrors.NewValidationError("destination", "source and destination must differ")
	}
	return nil
}
