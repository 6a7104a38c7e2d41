package service_test

import (
	"context"
	"errors"
	"testing"

	"go-airport-booking/internal/model"
	repoMocks "go-airport-booking/internal/repository/mocks"
	"go-airport-booking/internal/service"
	apperrors "go-airport-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubTx records commit/rollback; repositories are mocked so no statement
// ever reaches it.
type stubTx struct {
	committed  bool
	rolledBack bool
}

func (t *stubTx) Begin(ctx context.Context) (pgx.Tx, error) { panic("not implemented") }

func (t *stubTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *stubTx) Rollback(ctx context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

func (t *stubTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	panic("not implemented")
}

func (t *stubTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	panic("not implemented")
}

func (t *stubTx) LargeObjects() pgx.LargeObjects { panic("not implemented") }

func (t *stubTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	panic("not implemented")
}

func (t *stubTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	panic("not implemented")
}

func (t *stubTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	panic("not implemented")
}

func (t *stubTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("not implemented")
}

func (t *stubTx) Conn() *pgx.Conn { panic("not implemented") }

type stubDB struct {
	tx *stubTx
}

func (db *stubDB) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	return db.tx, nil
}

func setupOrderService() (*stubTx, *repoMocks.OrderRepositoryMock, *repoMocks.TicketRepositoryMock, *repoMocks.FlightRepositoryMock, service.OrderService) {
	tx := &stubTx{}
	orderRepo := repoMocks.NewOrderRepositoryMock()
	ticketRepo := repoMocks.NewTicketRepositoryMock()
	flightRepo := repoMocks.NewFlightRepositoryMock()
	svc := service.NewOrderService(&stubDB{tx: tx}, orderRepo, ticketRepo, flightRepo)
	return tx, orderRepo, ticketRepo, flightRepo, svc
}

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := context.Background()
	geo := model.SeatGeometry{Rows: 10, SeatsInRow: 6}

	t.Run("Success", func(t *testing.T) {
		tx, orderRepo, ticketRepo, flightRepo, svc := setupOrderService()

		orderRepo.On("CreateTx", ctx, tx, mock.Anything).Return(&model.Order{ID: 7, UserID: 1}, nil).Once()
		flightRepo.On("FindGeometryTx", ctx, tx, 3).Return(geo, nil).Once()
		ticketRepo.On("CreateTx", ctx, tx, mock.Anything).Return(&model.Ticket{ID: 1, Row: 2, Seat: 4, FlightID: 3}, nil).Once()
		ticketRepo.On("CreateTx", ctx, tx, mock.Anything).Return(&model.Ticket{ID: 2, Row: 2, Seat: 5, FlightID: 3}, nil).Once()

		req := &model.CreateOrderRequest{Tickets: []model.TicketRequest{
			{Row: 2, Seat: 4, FlightID: 3},
			{Row: 2, Seat: 5, FlightID: 3},
		}}

		order, err := svc.CreateOrder(ctx, 1, req)

		require.NoError(t, err)
		require.NotNil(t, order)
		assert.Len(t, order.Tickets, 2)
		assert.Equal(t, 1, order.Tickets[0].ID)
		assert.Equal(t, 2, order.Tickets[1].ID)
		assert.True(t, tx.committed)
		assert.False(t, tx.rolledBack)
		// The geometry is fetched once even though two tickets share the flight.
		flightRepo.AssertNumberOfCalls(t, "FindGeometryTx", 1)
		orderRepo.AssertExpectations(t)
		ticketRepo.AssertExpectations(t)
	})

	t.Run("Failed - empty ticket list", func(t *testing.T) {
		tx, orderRepo, _, _, svc := setupOrderService()

		_, err := svc.CreateOrder(ctx, 1, &model.CreateOrderRequest{})

		require.Error(t, err)
		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "tickets", verr.Field)
		assert.Equal(t, "must supply at least one ticket", verr.Message)
		assert.False(t, tx.committed)
		orderRepo.AssertNotCalled(t, "CreateTx")
	})

	t.Run("Failed - placement out of range", func(t *testing.T) {
		tx, orderRepo, ticketRepo, flightRepo, svc := setupOrderService()

		orderRepo.On("CreateTx", ctx, tx, mock.Anything).Return(&model.Order{ID: 7, UserID: 1}, nil).Once()
		flightRepo.On("FindGeometryTx", ctx, tx, 3).Return(geo, nil).Once()

		req := &model.CreateOrderRequest{Tickets: []model.TicketRequest{
			{Row: 11, Seat: 1, FlightID: 3},
		}}

		_, err := svc.CreateOrder(ctx, 1, req)

		require.Error(t, err)
		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "row", verr.Field)
		assert.False(t, tx.committed)
		assert.True(t, tx.rolledBack)
		ticketRepo.AssertNotCalled(t, "CreateTx")
	})

	t.Run("Failed - ErrSeatTaken", func(t *testing.T) {
		tx, orderRepo, ticketRepo, flightRepo, svc := setupOrderService()

		orderRepo.On("CreateTx", ctx, tx, mock.Anything).Return(&model.Order{ID: 7, UserID: 1}, nil).Once()
		flightRepo.On("FindGeometryTx", ctx, tx, 3).Return(geo, nil).Once()
		ticketRepo.On("CreateTx", ctx, tx, mock.Anything).Return(nil, apperrors.ErrSeatTaken).Once()

		req := &model.CreateOrderRequest{Tickets: []model.TicketRequest{
			{Row: 2, Seat: 4, FlightID: 3},
		}}

		_, err := svc.CreateOrder(ctx, 1, req)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrSeatTaken)
		assert.False(t, tx.committed)
		assert.True(t, tx.rolledBack)
	})

	t.Run("Failed - ErrFlightNotFound", func(t *testing.T) {
		tx, orderRepo, ticketRepo, flightRepo, svc := setupOrderService()

		orderRepo.On("CreateTx", ctx, tx, mock.Anything).Return(&model.Order{ID: 7, UserID: 1}, nil).Once()
		flightRepo.On("FindGeometryTx", ctx, tx, 99).Return(model.SeatGeometry{}, apperrors.ErrFlightNotFound).Once()

		req := &model.CreateOrderRequest{Tickets: []model.TicketRequest{
			{Row: 1, Seat: 1, FlightID: 99},
		}}

		_, err := svc.CreateOrder(ctx, 1, req)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrFlightNotFound)
		assert.False(t, tx.committed)
		assert.True(t, tx.rolledBack)
		ticketRepo.AssertNotCalled(t, "CreateTx")
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - tickets attached per order", func(t *testing.T) {
		_, orderRepo, ticketRepo, _, svc := setupOrderService()

		orders := []*model.Order{{ID: 2, UserID: 1}, {ID: 1, UserID: 1}}
		orderRepo.On("ListByUserID", ctx, 1).Return(orders, nil).Once()
		ticketRepo.On("ListByOrderIDs", ctx, []int{2, 1}).Return(map[int][]*model.Ticket{
			2: {{ID: 5, Row: 1, Seat: 1, FlightID: 3, OrderID: 2}},
		}, nil).Once()

		result, err := svc.ListOrders(ctx, 1)

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Len(t, result[0].Tickets, 1)
		assert.NotNil(t, result[1].Tickets)
		assert.Len(t, result[1].Tickets, 0)
	})

	t.Run("Success - no orders", func(t *testing.T) {
		_, orderRepo, ticketRepo, _, svc := setupOrderService()

		orderRepo.On("ListByUserID", ctx, 1).Return([]*model.Order{}, nil).Once()

		result, err := svc.ListOrders(ctx, 1)

		require.NoError(t, err)
		assert.Len(t, result, 0)
		ticketRepo.AssertNotCalled(t, "ListByOrderIDs")
	})

	t.Run("Failed - repository error", func(t *testing.T) {
		_, orderRepo, _, _, svc := setupOrderService()

		orderRepo.On("ListByUserID", ctx, 1).Return(nil, errors.New("connection lost")).Once()

		_, err := svc.ListOrders(ctx, 1)

		require.Error(t, err)
	})
}
