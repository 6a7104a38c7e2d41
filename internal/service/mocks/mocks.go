// Package mocks provides hand-written testify mocks for the service
// interfaces used in handler tests.
package mocks

import (
	"context"

	"go-airport-booking/internal/model"

	"github.com/stretchr/testify/mock"
)

type OrderServiceMock struct {
	mock.Mock
}

func NewOrderServiceMock() *OrderServiceMock {
	return &OrderServiceMock{}
}

func (m *OrderServiceMock) CreateOrder(ctx context.Context, userID int, req *model.CreateOrderRequest) (*model.Order, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *OrderServiceMock) ListOrders(ctx context.Context, userID int) ([]*model.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Order), args.Error(1)
}

type FlightServiceMock struct {
	mock.Mock
}

func NewFlightServiceMock() *FlightServiceMock {
	return &FlightServiceMock{}
}

func (m *FlightServiceMock) List(ctx context.Context, filter model.FlightFilter) ([]*model.FlightListItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.FlightListItem), args.Error(1)
}

func (m *FlightServiceMock) GetByID(ctx context.Context, id int) (*model.FlightDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FlightDetail), args.Error(1)
}

func (m *FlightServiceMock) Create(ctx context.Context, req *model.FlightRequest) (*model.Flight, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Flight), args.Error(1)
}

func (m *FlightServiceMock) Update(ctx context.Context, id int, req *model.FlightRequest) (*model.Flight, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Flight), args.Error(1)
}

func (m *FlightServiceMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type RouteServiceMock struct {
	mock.Mock
}

func NewRouteServiceMock() *RouteServiceMock {
	return &RouteServiceMock{}
}

func (m *RouteServiceMock) List(ctx context.Context, filter model.RouteFilter) ([]*model.Route, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Route), args.Error(1)
}

func (m *RouteServiceMock) GetByID(ctx context.Context, id int) (*model.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Route), args.Error(1)
}

func (m *RouteServiceMock) Create(ctx context.Context, req *model.RouteRequest) (*model.Route, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Route), args.Error(1)
}

func (m *RouteServiceMock) Update(ctx context.Context, id int, req *model.RouteRequest) (*model.Route, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Route), args.Error(1)
}

func (m *RouteServiceMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
