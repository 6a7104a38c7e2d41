package repository

import (
	"context"
	"fmt"

	"go-airport-booking/internal/model"
	apperrors "go-airport-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RouteRepository interface {
	List(ctx context.Context, filter model.RouteFilter) ([]*model.Route, error)
	FindByID(ctx context.Context, id int) (*model.Route, error)
	Create(ctx context.Context, route *model.Route) (*model.Route, error)
	Update(ctx context.Context, route *model.Route) (*model.Route, error)
	Delete(ctx context.Context, id int) error
}

type RouteRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewRouteRepository(pool *pgxpool.Pool) RouteRepository {
	return &RouteRepositoryImpl{
		pool: pool,
	}
}

const routeSelect = `
	SELECT r.id, r.source_id, r.destination_id, r.distance,
	       sa.id, sa.name, sa.closest_big_city,
	       da.id, da.name, da.closest_big_city
	FROM routes r
	JOIN airports sa ON sa.id = r.source_id
	JOIN airports da ON da.id = r.destination_id
`

func scanRoute(row pgx.Row) (*model.Route, error) {
	var route model.Route
	var source, destination model.Airport

	err := row.Scan(
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
	)
	if err != nil {
		return nil, err
	}

	route.Source = &source
	route.Destination = &destination
	return &route, nil
}

func (r *RouteRepositoryImpl) List(ctx context.Context, filter model.RouteFilter) ([]*model.Route, error) {
	query := routeSelect + `
		WHERE ($1 = '' OR sa.closest_big_city ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR da.closest_big_city ILIKE '%' || $2 || '%')
		ORDER BY r.distance
	`

	rows, err := r.pool.Query(ctx, query, filter.Source, filter.Destination)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]*model.Route, 0)

	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}

func (r *RouteRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Route, error) {
	query := routeSelect + `WHERE r.id = $1`

	route, err := scanRoute(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrRouteNotFound
		}
		return nil, err
	}

	return route, nil
}

func (r *RouteRepositoryImpl) Create(ctx context.Context, route *model.Route) (*model.Route, error) {
	query := `
		INSERT INTO routes (source_id, destination_id, distance)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query, route.SourceID, route.DestinationID, route.Distance).Scan(&route.ID)
	if err != nil {
		if isUniqueViolation(err, "routes_source_destination_distance_key") {
			return nil, apperrors.ErrDuplicateRoute
		}
		if isForeignKeyViolation(err, "") {
			return nil, apperrors.ErrAirportNotFound
		}
		return nil, fmt.Errorf("failed to create route: %w", err)
	}

	return r.FindByID(ctx, route.ID)
}

func (r *RouteRepositoryImpl) Update(ctx context.Context, route *model.Route) (*model.Route, error) {
	query := `
		UPDATE routes
		SET source_id = $1, destination_id = $2, distance = $3
		WHERE id = $4
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		route.SourceID, route.DestinationID, route.Distance, route.ID,
	).Scan(&route.ID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrRouteNotFound
		}
		if isUniqueViolation(err, "routes_source_destination_distance_key") {
			return nil, apperrors.ErrDuplicateRoute
		}
		if isForeignKeyViolation(err, "") {
			return nil, apperrors.ErrAirportNotFound
		}
		return nil, fmt.Errorf("failed to update route: %w", err)
	}

	return r.FindByID(ctx, route.ID)
}

func (r *RouteRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrRouteNotFound
	}

	return nil
}
