package repository

import (
	"context"
	"fmt"

	"go-airport-booking/internal/model"
	apperrors "go-airport-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository interface {
	ListByOrderIDs(ctx context.Context, orderIDs []int) (map[int][]*model.Ticket, error)

	// Transaction methods
	CreateTx(ctx context.Context, tx pgx.Tx, ticket *model.Ticket) (*model.Ticket, error)
}

type TicketRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &TicketRepositoryImpl{
		pool: pool,
	}
}

// ListByOrderIDs loads tickets for a batch of orders in one round trip,
// keyed by order id.
func (r *TicketRepositoryImpl) ListByOrderIDs(ctx context.Context, orderIDs []int) (map[int][]*model.Ticket, error) {
	query := `
		SELECT id, "row", seat, flight_id, order_id
		FROM tickets
		WHERE order_id = ANY($1)
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make(map[int][]*model.Ticket)

	for rows.Next() {
		var ticket model.Ticket
		err := rows.Scan(&ticket.ID, &ticket.Row, &ticket.Seat, &ticket.FlightID, &ticket.OrderID)
		if err != nil {
			return nil, err
		}
		tickets[ticket.OrderID] = append(tickets[ticket.OrderID], &ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

// CreateTx inserts one ticket inside the caller's transaction. A unique
// index on (flight_id, "row", seat) is the final arbiter of seat ownership;
// a violation means another order holds the seat.
func (r *TicketRepositoryImpl) CreateTx(ctx context.Context, tx pgx.Tx, ticket *model.Ticket) (*model.Ticket, error) {
	query := `
		INSERT INTO tickets ("row", seat, flight_id, order_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := tx.QueryRow(ctx, query,
		ticket.Row, ticket.Seat, ticket.FlightID, ticket.OrderID,
	).Scan(&ticket.ID)

	if err != nil {
		if isUniqueViolation(err, "tickets_flight_row_seat_key") {
			return nil, apperrors.ErrSeatTaken
		}
		if isForeignKeyViolation(err, "tickets_flight_id_fkey") {
			return nil, apperrors.ErrFlightNotFound
		}
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	return ticket, nil
}
