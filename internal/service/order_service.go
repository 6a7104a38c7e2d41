package service

import (
	"context"
	"fmt"

	"go-airport-booking/internal/model"
	"go-airport-booking/internal/repository"
	apperrors "go-airport-booking/pkg/app_errors"
	"go-airport-booking/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// DB begins transactions for order creation. *pgxpool.Pool satisfies it.
type DB interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type OrderService interface {
	CreateOrder(ctx context.Context, userID int, req *model.CreateOrderRequest) (*model.Order, error)
	ListOrders(ctx context.Context, userID int) ([]*model.Order, error)
}

type OrderServiceImpl struct {
	db      DB
	orders  repository.OrderRepository
	tickets repository.TicketRepository
	flights repository.FlightRepository
	log     *zap.Logger
}

func NewOrderService(
	db DB,
	orders repository.OrderRepository,
	tickets repository.TicketRepository,
	flights repository.FlightRepository,
) OrderService {
	return &OrderServiceImpl{
		db:      db,
		orders:  orders,
		tickets: tickets,
		flights: flights,
		log:     logger.WithComponent("order_service"),
	}
}

// CreateOrder books every requested seat in a single transaction. Any
// failed ticket (bad placement, taken seat, unknown flight) rolls back the
// whole order, so partial orders never exist.
func (s *OrderServiceImpl) CreateOrder(ctx context.Context, userID int, req *model.CreateOrderRequest) (*model.Order, error) {
	if len(req.Tickets) == 0 {
		return nil, apperrors.NewValidationError("tickets", "must supply at least one ticket")
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	order := &model.Order{
		OrderUID: uuid.New(),
		UserID:   userID,
	}

	order, err = s.orders.CreateTx(ctx, tx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Seat grids fetched once per flight within the transaction.
	geometries := make(map[int]model.SeatGeometry)

	for _, tr := range req.Tickets {
		geo, ok := geometries[tr.FlightID]
		if !ok {
			geo, err = s.flights.FindGeometryTx(ctx, tx, tr.FlightID)
			if err != nil {
				return nil, err
			}
			geometries[tr.FlightID] = geo
		}

		if verr := model.ValidatePlacement(tr.Row, tr.Seat, geo); verr != nil {
			return nil, verr
		}

		ticket := &model.Ticket{
			Row:      tr.Row,
			Seat:     tr.Seat,
			FlightID: tr.FlightID,
			OrderID:  order.ID,
		}

		ticket, err = s.tickets.CreateTx(ctx, tx, ticket)
		if err != nil {
			return nil, err
		}

		order.Tickets = append(order.Tickets, ticket)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	s.log.Info("Order created",
		zap.String("order_uid", order.OrderUID.String()),
		zap.Int("user_id", userID),
		zap.Int("tickets", len(order.Tickets)))

	return order, nil
}

func (s *OrderServiceImpl) ListOrders(ctx context.Context, userID int) ([]*model.Order, error) {
	orders, err := s.orders.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	orderIDs := make([]int, 0, len(orders))
	for _, order := range orders {
		orderIDs = append(orderIDs, order.ID)
	}

	ticketsByOrder, err := s.tickets.ListByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	for _, order := range orders {
		tickets := ticketsByOrder[order.ID]
		if tickets == nil {
			tickets = make([]*model.Ticket, 0)
		}
		order.Tickets = tickets
	}

	return orders, nil
}
