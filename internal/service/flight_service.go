package service

import (
	"context"

	"go-airport-booking/internal/model"
	"go-airport-booking/internal/repository"
)

type FlightService interface {
	List(ctx context.Context, filter model.FlightFilter) ([]*model.FlightListItem, error)
	GetByID(ctx context.Context, id int) (*model.FlightDetail, error)
	Create(ctx context.Context, req *model.FlightRequest) (*model.Flight, error)
	Update(ctx context.Context, id int, req *model.FlightRequest) (*model.Flight, error)
	Delete(ctx context.Context, id int) error
}

type FlightServiceImpl struct {
	flights repository.FlightRepository
}

func NewFlightService(flights repository.FlightRepository) FlightService {
	return &FlightServiceImpl{
		flights: flights,
	}
}

// List derives tickets_available per flight from the seat grid and the
// issued ticket count read in the same query.
func (s *FlightServiceImpl) List(ctx context.Context, filter model.FlightFilter) ([]*model.FlightListItem, error) {
	rows, err := s.flights.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*model.FlightListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &model.FlightListItem{
			ID:               row.ID,
			Source:           row.Source,
			Destination:      row.Destination,
			Airplane:         row.AirplaneName,
			DepartureTime:    row.DepartureTime,
			ArrivalTime:      row.ArrivalTime,
			TicketsAvailable: model.TicketsAvailable(row.Geometry, row.IssuedTickets),
		})
	}

	return items, nil
}

func (s *FlightServiceImpl) GetByID(ctx context.Context, id int) (*model.FlightDetail, error) {
	flight, err := s.flights.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.flights.TakenSeats(ctx, id)
	if err != nil {
		return nil, err
	}

	crews := make([]string, 0, len(flight.Crews))
	for i := range flight.Crews {
		crews = append(crews, flight.Crews[i].FullName())
	}

	airplane := flight.Airplane
	detail := &model.FlightDetail{
		ID:               flight.ID,
		Route:            flight.Route,
		Airplane:         *toAirplaneResponse(airplane),
		Crews:            crews,
		DepartureTime:    flight.DepartureTime,
		ArrivalTime:      flight.ArrivalTime,
		TicketsAvailable: model.TicketsAvailable(airplane.Geometry(), len(taken)),
		TakenSeats:       taken,
	}

	return detail, nil
}

func (s *FlightServiceImpl) Create(ctx context.Context, req *model.FlightRequest) (*model.Flight, error) {
	flight := &model.Flight{
		RouteID:       req.RouteID,
		AirplaneID:    req.AirplaneID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
	}

	return s.flights.Create(ctx, flight, req.CrewIDs)
}

func (s *FlightServiceImpl) Update(ctx context.Context, id int, req *model.FlightRequest) (*model.Flight, error) {
	flight := &model.Flight{
		ID:            id,
		RouteID:       req.RouteID,
		AirplaneID:    req.AirplaneID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
	}

	return s.flights.Update(ctx, flight, req.CrewIDs)
}

func (s *FlightServiceImpl) Delete(ctx context.Context, id int) error {
	return s.flights.Delete(ctx, id)
}
