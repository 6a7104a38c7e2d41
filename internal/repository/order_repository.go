package repository

import (
	"context"

	"go-airport-booking/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository interface {
	ListByUserID(ctx context.Context, userID int) ([]*model.Order, error)

	// Transaction methods
	CreateTx(ctx context.Context, tx pgx.Tx, order *model.Order) (*model.Order, error)
}

type OrderRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &OrderRepositoryImpl{
		pool: pool,
	}
}

func (r *OrderRepositoryImpl) ListByUserID(ctx context.Context, userID int) ([]*model.Order, error) {
	query := `
		SELECT id, order_uid, user_id, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*model.Order, 0)

	for rows.Next() {
		var order model.Order
		err := rows.Scan(&order.ID, &order.OrderUID, &order.UserID, &order.CreatedAt)
		if err != nil {
			return nil, err
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// CreateTx inserts the order row inside the caller's transaction. Ticket
// rows are inserted by the caller through TicketRepository.CreateTx so the
// whole order commits or rolls back as one unit.
func (r *OrderRepositoryImpl) CreateTx(ctx context.Context, tx pgx.Tx, order *model.Order) (*model.Order, error) {
	query := `
		INSERT INTO orders (order_uid, user_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := tx.QueryRow(ctx, query, order.OrderUID, order.UserID).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return nil, err
	}

	return order, nil
}
