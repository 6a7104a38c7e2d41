package repository

import (
	"context"
	"fmt"
	"time"

	"go-airport-booking/internal/model"
	apperrors "go-airport-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	List(ctx context.Context, filter model.FlightFilter) ([]*model.FlightListRow, error)
	FindByID(ctx context.Context, id int) (*model.Flight, error)
	TakenSeats(ctx context.Context, flightID int) ([]model.Seat, error)
	Create(ctx context.Context, flight *model.Flight, crewIDs []int) (*model.Flight, error)
	Update(ctx context.Context, flight *model.Flight, crewIDs []int) (*model.Flight, error)
	Delete(ctx context.Context, id int) error

	// Transaction methods
	FindGeometryTx(ctx context.Context, tx pgx.Tx, flightID int) (model.SeatGeometry, error)
}

type FlightRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewFlightRepository(pool *pgxpool.Pool) FlightRepository {
	return &FlightRepositoryImpl{
		pool: pool,
	}
}

// List reads the schedule plus the raw availability inputs (seat grid and
// issued ticket count). The count comes from the tickets table on every
// call; availability is derived by the service, never stored.
func (r *FlightRepositoryImpl) List(ctx context.Context, filter model.FlightFilter) ([]*model.FlightListRow, error) {
	query := `
		SELECT f.id, sa.name, da.name, a.name,
		       f.departure_time, f.arrival_time,
		       a."rows", a.seats_in_row, COUNT(t.id)
		FROM flights f
		JOIN routes r ON r.id = f.route_id
		JOIN airports sa ON sa.id = r.source_id
		JOIN airports da ON da.id = r.destination_id
		JOIN airplanes a ON a.id = f.airplane_id
		LEFT JOIN tickets t ON t.flight_id = f.id
		WHERE ($1::date IS NULL OR (f.departure_time AT TIME ZONE 'UTC')::date = $1::date)
		  AND ($2 = '' OR sa.name ILIKE '%' || $2 || '%')
		  AND ($3 = '' OR da.name ILIKE '%' || $3 || '%')
		GROUP BY f.id, sa.name, da.name, a.name,
		         f.departure_time, f.arrival_time, a."rows", a.seats_in_row
		ORDER BY f.departure_time
	`

	var date *time.Time
	if filter.Date != nil {
		d := filter.Date.UTC()
		date = &d
	}

	rows, err := r.pool.Query(ctx, query, date, filter.Source, filter.Destination)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]*model.FlightListRow, 0)

	for rows.Next() {
		var row model.FlightListRow
		err := rows.Scan(
			&row.ID,
			&row.Source,
			&row.Destination,
			&row.AirplaneName,
			&row.DepartureTime,
			&row.ArrivalTime,
			&row.Geometry.Rows,
			&row.Geometry.SeatsInRow,
			&row.IssuedTickets,
		)
		if err != nil {
			return nil, err
		}
		flights = append(flights, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return flights, nil
}

func (r *FlightRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Flight, error) {
	query := `
		SELECT f.id, f.route_id, f.airplane_id, f.departure_time, f.arrival_time,
		       rt.id, rt.source_id, rt.destination_id, rt.distance,
		       sa.id, sa.name, sa.closest_big_city,
		       da.id, da.name, da.closest_big_city,
		       a.id, a.name, a."rows", a.seats_in_row, a.airplane_type_id,
		       apt.id, apt.name
		FROM flights f
		JOIN routes rt ON rt.id = f.route_id
		JOIN airports sa ON sa.id = rt.source_id
		JOIN airports da ON da.id = rt.destination_id
		JOIN airplanes a ON a.id = f.airplane_id
		JOIN airplane_types apt ON apt.id = a.airplane_type_id
		WHERE f.id = $1
	`

	var flight model.Flight
	var route model.Route
	var source, destination model.Airport
	var airplane model.Airplane
	var airplaneType model.AirplaneType

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&flight.ID,
		&flight.RouteID,
		&flight.AirplaneID,
		&flight.DepartureTime,
		&flight.ArrivalTime,
		&route.ID,
		&route.SourceID,
		&route.DestinationID,
		&route.Distance,
		&source.ID,
		&source.Name,
		&source.ClosestBigCity,
		&destination.ID,
		&destination.Name,
		&destination.ClosestBigCity,
		&airplane.ID,
		&airplane.Name,
		&airplane.Rows,
		&airplane.SeatsInRow,
		&airplane.AirplaneTypeID,
		&airplaneType.ID,
		&airplaneType.Name,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrFlightNotFound
		}
		return nil, err
	}

	route.Source = &source
	route.Destination = &destination
	airplane.AirplaneType = &airplaneType
	flight.Route = &route
	flight.Airplane = &airplane

	crews, err := r.listCrews(ctx, flight.ID)
	if err != nil {
		return nil, err
	}
	flight.Crews = crews

	return &flight, nil
}

func (r *FlightRepositoryImpl) listCrews(ctx context.Context, flightID int) ([]model.Crew, error) {
	query := `
		SELECT c.id, c.first_name, c.last_name
		FROM crews c
		JOIN flight_crews fc ON fc.crew_id = c.id
		WHERE fc.flight_id = $1
		ORDER BY c.id
	`

	rows, err := r.pool.Query(ctx, query, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	crews := make([]model.Crew, 0)

	for rows.Next() {
		var crew model.Crew
		if err := rows.Scan(&crew.ID, &crew.FirstName, &crew.LastName); err != nil {
			return nil, err
		}
		crews = append(crews, crew)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return crews, nil
}

func (r *FlightRepositoryImpl) TakenSeats(ctx context.Context, flightID int) ([]model.Seat, error) {
	query := `
		SELECT "row", seat
		FROM tickets
		WHERE flight_id = $1
		ORDER BY "row", seat
	`

	rows, err := r.pool.Query(ctx, query, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]model.Seat, 0)

	for rows.Next() {
		var seat model.Seat
		if err := rows.Scan(&seat.Row, &seat.Seat); err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func (r *FlightRepositoryImpl) Create(ctx context.Context, flight *model.Flight, crewIDs []int) (*model.Flight, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO flights (route_id, airplane_id, departure_time, arrival_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err = tx.QueryRow(ctx, query,
		flight.RouteID, flight.AirplaneID, flight.DepartureTime, flight.ArrivalTime,
	).Scan(&flight.ID)

	if err != nil {
		return nil, mapFlightWriteError(err)
	}

	if err := replaceCrewAssignments(ctx, tx, flight.ID, crewIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return r.FindByID(ctx, flight.ID)
}

func (r *FlightRepositoryImpl) Update(ctx context.Context, flight *model.Flight, crewIDs []int) (*model.Flight, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE flights
		SET route_id = $1, airplane_id = $2, departure_time = $3, arrival_time = $4
		WHERE id = $5
		RETURNING id
	`

	err = tx.QueryRow(ctx, query,
		flight.RouteID, flight.AirplaneID, flight.DepartureTime, flight.ArrivalTime, flight.ID,
	).Scan(&flight.ID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrFlightNotFound
		}
		return nil, mapFlightWriteError(err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM flight_crews WHERE flight_id = $1`, flight.ID); err != nil {
		return nil, err
	}

	if err := replaceCrewAssignments(ctx, tx, flight.ID, crewIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return r.FindByID(ctx, flight.ID)
}

func replaceCrewAssignments(ctx context.Context, tx pgx.Tx, flightID int, crewIDs []int) error {
	for _, crewID := range crewIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO flight_crews (flight_id, crew_id) VALUES ($1, $2)`,
			flightID, crewID,
		)
		if err != nil {
			if isForeignKeyViolation(err, "flight_crews_crew_id_fkey") {
				return apperrors.ErrCrewNotFound
			}
			return fmt.Errorf("failed to assign crew %d: %w", crewID, err)
		}
	}
	return nil
}

func mapFlightWriteError(err error) error {
	switch {
	case isForeignKeyViolation(err, "flights_route_id_fkey"):
		return apperrors.ErrRouteNotFound
	case isForeignKeyViolation(err, "flights_airplane_id_fkey"):
		return apperrors.ErrAirplaneNotFound
	default:
		return fmt.Errorf("failed to write flight: %w", err)
	}
}

func (r *FlightRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM flights WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrFlightNotFound
	}

	return nil
}

// FindGeometryTx reads the seat grid of a flight's airplane inside the
// caller's transaction, so placement validation and the ticket insert see
// the same snapshot.
func (r *FlightRepositoryImpl) FindGeometryTx(ctx context.Context, tx pgx.Tx, flightID int) (model.SeatGeometry, error) {
	query := `
		SELECT a."rows", a.seats_in_row
		FROM flights f
		JOIN airplanes a ON a.id = f.airplane_id
		WHERE f.id = $1
	`

	var geo model.SeatGeometry
	err := tx.QueryRow(ctx, query, flightID).Scan(&geo.Rows, &geo.SeatsInRow)

	if err != nil {
		if err == pgx.ErrNoRows {
			return model.SeatGeometry{}, apperrors.ErrFlightNotFound
		}
		return model.SeatGeometry{}, err
	}

	return geo, nil
}
