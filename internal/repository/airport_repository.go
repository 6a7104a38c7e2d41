package repository

import (
	"context"

	"go-airport-booking/internal/model"
	apperrors "go-airport-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirportRepository interface {
	List(ctx context.Context) ([]*model.Airport, error)
	FindByID(ctx context.Context, id int) (*model.Airport, error)
	Create(ctx context.Context, airport *model.Airport) (*model.Airport, error)
	Update(ctx context.Context, airport *model.Airport) (*model.Airport, error)
	Delete(ctx context.Context, id int) error
}

type AirportRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAirportRepository(pool *pgxpool.Pool) AirportRepository {
	return &AirportRepositoryImpl{
		pool: pool,
	}
}

func (r *AirportRepositoryImpl) List(ctx context.Context) ([]*model.Airport, error) {
	query := `
		SELECT id, name, closest_big_city
		FROM airports
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]*model.Airport, 0)

	for rows.Next() {
		var airport model.Airport
		if err := rows.Scan(&airport.ID, &airport.Name, &airport.ClosestBigCity); err != nil {
			return nil, err
		}
		airports = append(airports, &airport)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return airports, nil
}

func (r *AirportRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Airport, error) {
	query := `
		SELECT id, name, closest_big_city
		FROM airports
		WHERE id = $1
	`

	var airport model.Airport
	err := r.pool.QueryRow(ctx, query, id).Scan(&airport.ID, &airport.Name, &airport.ClosestBigCity)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAirportNotFound
		}
		return nil, err
	}

	return &airport, nil
}

func (r *AirportRepositoryImpl) Create(ctx context.Context, airport *model.Airport) (*model.Airport, error) {
	query := `
		INSERT INTO airports (name, closest_big_city)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query, airport.Name, airport.ClosestBigCity).Scan(&airport.ID)
	if err != nil {
		return nil, err
	}

	return airport, nil
}

func (r *AirportRepositoryImpl) Update(ctx context.Context, airport *model.Airport) (*model.Airport, error) {
	query := `
		UPDATE airports
		SET name = $1, closest_big_city = $2
		WHERE id = $3
		RETURNING id, name, closest_big_city
	`

	err := r.pool.QueryRow(ctx, query, airport.Name, airport.ClosestBigCity, airport.ID).Scan(
		&airport.ID,
		&airport.Name,
		&airport.ClosestBigCity,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAirportNotFound
		}
		return nil, err
	}

	return airport, nil
}

func (r *AirportRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM airports WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrAirportNotFound
	}

	return nil
}
