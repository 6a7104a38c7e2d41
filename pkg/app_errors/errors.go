package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrAirportNotFound      = errors.New("airport not found")
	ErrRouteNotFound        = errors.New("route not found")
	ErrDuplicateRoute       = errors.New("route already exists")
	ErrAirplaneTypeNotFound = errors.New("airplane type not found")
	ErrAirplaneNotFound     = errors.New("airplane not found")
	ErrCrewNotFound         = errors.New("crew member not found")
	ErrFlightNotFound       = errors.New("flight not found")
	ErrOrderNotFound        = errors.New("order not found")

	ErrSeatTaken = errors.New("seat already taken on this flight")

	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServerError = errors.New("internal server error")
)

// ValidationError is a field-scoped validation failure. It is recoverable by
// the caller and is rendered as a 400 with the offending field attached.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
