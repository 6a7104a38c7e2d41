// Package mocks provides hand-written testify mocks for the repository
// interfaces used in service tests.
package mocks

import (
	"context"

	"go-airport-booking/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type UserRepositoryMock struct {
	mock.Mock
}

func NewUserRepositoryMock() *UserRepositoryMock {
	return &UserRepositoryMock{}
}

func (m *UserRepositoryMock) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepositoryMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepositoryMock) FindByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type AirportRepositoryMock struct {
	mock.Mock
}

func NewAirportRepositoryMock() *AirportRepositoryMock {
	return &AirportRepositoryMock{}
}

func (m *AirportRepositoryMock) List(ctx context.Context) ([]*model.Airport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Airport), args.Error(1)
}

func (m *AirportRepositoryMock) FindByID(ctx context.Context, id int) (*model.Airport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Airport), args.Error(1)
}

func (m *AirportRepositoryMock) Create(ctx context.Context, airport *model.Airport) (*model.Airport, error) {
	args := m.Called(ctx, airport)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Airport), args.Error(1)
}

func (m *AirportRepositoryMock) Update(ctx context.Context, airport *model.Airport) (*model.Airport, error) {
	args := m.Called(ctx, airport)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Airport), args.Error(1)
}

func (m *AirportRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type RouteRepositoryMock struct {
	mock.Mock
}

func NewRouteRepositoryMock() *RouteRepositoryMock {
	return &RouteRepositoryMock{}
}

func (m *RouteRepositoryMock) List(ctx context.Context, filter model.RouteFilter) ([]*model.Route, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Route), args.Error(1)
}

func (m *RouteRepositoryMock) FindByID(ctx context.Context, id int) (*model.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Route), args.Error(1)
}

func (m *RouteRepositoryMock) Create(ctx context.Context, route *model.Route) (*model.Route, error) {
	args := m.Called(ctx, route)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Route), args.Error(1)
}

func (m *RouteRepositoryMock) Update(ctx context.Context, route *model.Route) (*model.Route, error) {
	args := m.Called(ctx, route)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Route), args.Error(1)
}

func (m *RouteRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type FlightRepositoryMock struct {
	mock.Mock
}

func NewFlightRepositoryMock() *FlightRepositoryMock {
	return &FlightRepositoryMock{}
}

func (m *FlightRepositoryMock) List(ctx context.Context, filter model.FlightFilter) ([]*model.FlightListRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.FlightListRow), args.Error(1)
}

func (m *FlightRepositoryMock) FindByID(ctx context.Context, id int) (*model.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Flight), args.Error(1)
}

func (m *FlightRepositoryMock) TakenSeats(ctx context.Context, flightID int) ([]model.Seat, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Seat), args.Error(1)
}

func (m *FlightRepositoryMock) Create(ctx context.Context, flight *model.Flight, crewIDs []int) (*model.Flight, error) {
	args := m.Called(ctx, flight, crewIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Flight), args.Error(1)
}

func (m *FlightRepositoryMock) Update(ctx context.Context, flight *model.Flight, crewIDs []int) (*model.Flight, error) {
	args := m.Called(ctx, flight, crewIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Flight), args.Error(1)
}

func (m *FlightRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *FlightRepositoryMock) FindGeometryTx(ctx context.Context, tx pgx.Tx, flightID int) (model.SeatGeometry, error) {
	args := m.Called(ctx, tx, flightID)
	return args.Get(0).(model.SeatGeometry), args.Error(1)
}

type OrderRepositoryMock struct {
	mock.Mock
}

func NewOrderRepositoryMock() *OrderRepositoryMock {
	return &OrderRepositoryMock{}
}

func (m *OrderRepositoryMock) ListByUserID(ctx context.Context, userID int) ([]*model.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Order), args.Error(1)
}

func (m *OrderRepositoryMock) CreateTx(ctx context.Context, tx pgx.Tx, order *model.Order) (*model.Order, error) {
	args := m.Called(ctx, tx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

type TicketRepositoryMock struct {
	mock.Mock
}

func NewTicketRepositoryMock() *TicketRepositoryMock {
	return &TicketRepositoryMock{}
}

func (m *TicketRepositoryMock) ListByOrderIDs(ctx context.Context, orderIDs []int) (map[int][]*model.Ticket, error) {
	args := m.Called(ctx, orderIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int][]*model.Ticket), args.Error(1)
}

func (m *TicketRepositoryMock) CreateTx(ctx context.Context, tx pgx.Tx, ticket *model.Ticket) (*model.Ticket, error) {
	args := m.Called(ctx, tx, ticket)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}
