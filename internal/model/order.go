package model

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID        int       `json:"id" db:"id"`
	OrderUID  uuid.UUID `json:"order_uid" db:"order_uid"`
	UserID    int       `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Tickets []*Ticket `json:"tickets" db:"-"`
}

// Row and Seat carry no binding tags: out-of-range values (including zero)
// must reach the placement validator so the caller gets a field-scoped range
// error instead of a generic binding failure.
type TicketRequest struct {
	Row      int `json:"row"`
	Seat     int `json:"seat"`
	FlightID int `json:"flight_id" binding:"required"`
}

type CreateOrderRequest struct {
	Tickets []TicketRequest `json:"tickets"`
}
