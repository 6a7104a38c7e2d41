package service

import (
	"context"

	"go-airport-booking/internal/model"
	"go-airport-booking/internal/repository"
)

type AirplaneService interface {
	List(ctx context.Context, typeName string) ([]*model.AirplaneResponse, error)
	GetByID(ctx context.Context, id int) (*model.AirplaneResponse, error)
	Create(ctx context.Context, req *model.AirplaneRequest) (*model.AirplaneResponse, error)
	Update(ctx context.Context, id int, req *model.AirplaneRequest) (*model.AirplaneResponse, error)
	Delete(ctx context.Context, id int) error
}

type AirplaneServiceImpl struct {
	airplanes repository.AirplaneRepository
}

func NewAirplaneService(airplanes repository.AirplaneRepository) AirplaneService {
	return &AirplaneServiceImpl{
		airplanes: airplanes,
	}
}

func (s *AirplaneServiceImpl) List(ctx context.Context, typeName string) ([]*model.AirplaneResponse, error) {
	airplanes, err := s.airplanes.List(ctx, typeName)
	if err != nil {
		return nil, err
	}

	responses := make([]*model.AirplaneResponse, 0, len(airplanes))
	for _, airplane := range airplanes {
		responses = append(responses, toAirplaneResponse(airplane))
	}

	return responses, nil
}

func (s *AirplaneServiceImpl) GetByID(ctx context.Context, id int) (*model.AirplaneResponse, error) {
	airplane, err := s.airplanes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toAirplaneResponse(airplane), nil
}

func (s *AirplaneServiceImpl) Create(ctx context.Context, req *model.AirplaneRequest) (*model.AirplaneResponse, error) {
	airplane := &model.Airplane{
		Name:           req.Name,
		Rows:           req.Rows,
		SeatsInRow:     req.SeatsInRow,
		AirplaneTypeID: req.AirplaneTypeID,
	}

	created, err := s.airplanes.Create(ctx, airplane)
	if err != nil {
		return nil, err
	}

	return toAirplaneResponse(created), nil
}

func (s *AirplaneServiceImpl) Update(ctx context.Context, id int, req *model.AirplaneRequest) (*model.AirplaneResponse, error) {
	airplane := &model.Airplane{
		ID:             id,
		Name:           req.Name,
		Rows:           req.Rows,
		SeatsInRow:     req.SeatsInRow,
		AirplaneTypeID: req.AirplaneTypeID,
	}

	updated, err := s.airplanes.Update(ctx, airplane)
	if err != nil {
		return nil, err
	}

	return toAirplaneResponse(updated), nil
}

func (s *AirplaneServiceImpl) Delete(ctx context.Context, id int) error {
	return s.airplanes.Delete(ctx, id)
}

func toAirplaneResponse(a *model.Airplane) *model.AirplaneResponse {
	resp := &model.AirplaneResponse{
		ID:         a.ID,
		Name:       a.Name,
		Rows:       a.Rows,
		SeatsInRow: a.SeatsInRow,
		Capacity:   a.Capacity(),
	}
	if a.AirplaneType != nil {
		resp.AirplaneType = a.AirplaneType.Name
	}
	return resp
}
