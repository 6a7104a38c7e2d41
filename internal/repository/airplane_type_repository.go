package repository

import (
	"context"

	"go-airport-booking/internal/model"
	apperrors "go-airport-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirplaneTypeRepository interface {
	List(ctx context.Context, name string) ([]*model.AirplaneType, error)
	FindByID(ctx context.Context, id int) (*model.AirplaneType, error)
	Create(ctx context.Context, airplaneType *model.AirplaneType) (*model.AirplaneType, error)
	Update(ctx context.Context, airplaneType *model.AirplaneType) (*model.AirplaneType, error)
	Delete(ctx context.Context, id int) error
}

type AirplaneTypeRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAirplaneTypeRepository(pool *pgxpool.Pool) AirplaneTypeRepository {
	return &AirplaneTypeRepositoryImpl{
		pool: pool,
	}
}

func (r *AirplaneTypeRepositoryImpl) List(ctx context.Context, name string) ([]*model.AirplaneType, error) {
	query := `
		SELECT id, name
		FROM airplane_types
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]*model.AirplaneType, 0)

	for rows.Next() {
		var airplaneType model.AirplaneType
		if err := rows.Scan(&airplaneType.ID, &airplaneType.Name); err != nil {
			return nil, err
		}
		types = append(types, &airplaneType)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return types, nil
}

func (r *AirplaneTypeRepositoryImpl) FindByID(ctx context.Context, id int) (*model.AirplaneType, error) {
	query := `
		SELECT id, name
		FROM airplane_types
		WHERE id = $1
	`

	var airplaneType model.AirplaneType
	err := r.pool.QueryRow(ctx, query, id).Scan(&airplaneType.ID, &airplaneType.Name)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAirplaneTypeNotFound
		}
		return nil, err
	}

	return &airplaneType, nil
}

func (r *AirplaneTypeRepositoryImpl) Create(ctx context.Context, airplaneType *model.AirplaneType) (*model.AirplaneType, error) {
	query := `
		INSERT INTO airplane_types (name)
		VALUES ($1)
		RETURNING id
	`

	if err := r.pool.QueryRow(ctx, query, airplaneType.Name).Scan(&airplaneType.ID); err != nil {
		return nil, err
	}

	return airplaneType, nil
}

func (r *AirplaneTypeRepositoryImpl) Update(ctx context.Context, airplaneType *model.AirplaneType) (*model.AirplaneType, error) {
	query := `
		UPDATE airplane_types
		SET name = $1
		WHERE id = $2
		RETURNING id, name
	`

	err := r.pool.QueryRow(ctx, query, airplaneType.Name, airplaneType.ID).Scan(
		&airplaneType.ID,
		&airplaneType.Name,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAirplaneTypeNotFound
		}
		return nil, err
	}

	return airplaneType, nil
}

func (r *AirplaneTypeRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM airplane_types WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrAirplaneTypeNotFound
	}

	return nil
}
