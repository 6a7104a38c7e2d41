package model

import (
	"fmt"

	apperrors "go-airport-booking/pkg/app_errors"
)

type Ticket struct {
	ID       int `json:"id" db:"id"`
	Row      int `json:"row" db:"row"`
	Seat     int `json:"seat" db:"seat"`
	FlightID int `json:"flight_id" db:"flight_id"`
	OrderID  int `json:"order_id" db:"order_id"`
}

// Seat is a (row, seat) pair, used for the taken-seat listing of a flight.
type Seat struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

// ValidateRow checks that row lies within the airplane's row count.
func ValidateRow(row, rows int) *apperrors.ValidationError {
	if row < 1 || row > rows {
		return apperrors.NewValidationError(
			"row",
			fmt.Sprintf("row number must be in available range: (1, rows): (1, %d)", rows),
		)
	}
	return nil
}

// ValidateSeat checks that seat lies within the airplane's seats per row.
func ValidateSeat(seat, seatsInRow int) *apperrors.ValidationError {
	if seat < 1 || seat > seatsInRow {
		return apperrors.NewValidationError(
			"seat",
			fmt.Sprintf("seat number must be in available range: (1, seats_in_row): (1, %d)", seatsInRow),
		)
	}
	return nil
}

// ValidatePlacement confirms a ticket's (row, seat) lies inside the seat
// grid. Seat uniqueness per flight is a separate concern, enforced by the
// tickets table constraint and surfaced as a conflict, never merged into
// these range errors.
func ValidatePlacement(row, seat int, geo SeatGeometry) *apperrors.ValidationError {
	if err := ValidateRow(row, geo.Rows); err != nil {
		return err
	}
	return ValidateSeat(seat, geo.SeatsInRow)
}
