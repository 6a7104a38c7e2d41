package repository

import (
	"context"

	"go-airport-booking/internal/model"
	apperrors "go-airport-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CrewRepository interface {
	List(ctx context.Context) ([]*model.Crew, error)
	FindByID(ctx context.Context, id int) (*model.Crew, error)
	Create(ctx context.Context, crew *model.Crew) (*model.Crew, error)
	Update(ctx context.Context, crew *model.Crew) (*model.Crew, error)
	Delete(ctx context.Context, id int) error
}

type CrewRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCrewRepository(pool *pgxpool.Pool) CrewRepository {
	return &CrewRepositoryImpl{
		pool: pool,
	}
}

func (r *CrewRepositoryImpl) List(ctx context.Context) ([]*model.Crew, error) {
	query := `
		SELECT id, first_name, last_name
		FROM crews
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	crews := make([]*model.Crew, 0)

	for rows.Next() {
		var crew model.Crew
		if err := rows.Scan(&crew.ID, &crew.FirstName, &crew.LastName); err != nil {
			return nil, err
		}
		crews = append(crews, &crew)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return crews, nil
}

func (r *CrewRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Crew, error) {
	query := `
		SELECT id, first_name, last_name
		FROM crews
		WHERE id = $1
	`

	var crew model.Crew
	err := r.pool.QueryRow(ctx, query, id).Scan(&crew.ID, &crew.FirstName, &crew.LastName)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrCrewNotFound
		}
		return nil, err
	}

	return &crew, nil
}

func (r *CrewRepositoryImpl) Create(ctx context.Context, crew *model.Crew) (*model.Crew, error) {
	query := `
		INSERT INTO crews (first_name, last_name)
		VALUES ($1, $2)
		RETURNING id
	`

	if err := r.pool.QueryRow(ctx, query, crew.FirstName, crew.LastName).Scan(&crew.ID); err != nil {
		return nil, err
	}

	return crew, nil
}

func (r *CrewRepositoryImpl) Update(ctx context.Context, crew *model.Crew) (*model.Crew, error) {
	query := `
		UPDATE crews
		SET first_name = $1, last_name = $2
		WHERE id = $3
		RETURNING id, first_name, last_name
	`

	err := r.pool.QueryRow(ctx, query, crew.FirstName, crew.LastName, crew.ID).Scan(
		&crew.ID,
		&crew.FirstName,
		&crew.LastName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrCrewNotFound
		}
		return nil, err
	}

	return crew, nil
}

func (r *CrewRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM crews WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrCrewNotFound
	}

	return nil
}
