package repository

import (
	"context"
	"fmt"

	"go-airport-booking/internal/model"
	apperrors "go-airport-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirplaneRepository interface {
	List(ctx context.Context, typeName string) ([]*model.Airplane, error)
	FindByID(ctx context.Context, id int) (*model.Airplane, error)
	Create(ctx context.Context, airplane *model.Airplane) (*model.Airplane, error)
	Update(ctx context.Context, airplane *model.Airplane) (*model.Airplane, error)
	Delete(ctx context.Context, id int) error
}

type AirplaneRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAirplaneRepository(pool *pgxpool.Pool) AirplaneRepository {
	return &AirplaneRepositoryImpl{
		pool: pool,
	}
}

// "rows" is a reserved word in PostgreSQL, hence the quoting.
const airplaneSelect = `
	SELECT a.id, a.name, a."rows", a.seats_in_row, a.airplane_type_id,
	       apt.id, apt.name
	FROM airplanes a
	JOIN airplane_types apt ON apt.id = a.airplane_type_id
`

func scanAirplane(row pgx.Row) (*model.Airplane, error) {
	var airplane model.Airplane
	var airplaneType model.AirplaneType

	err := row.Scan(
		&airplane.ID,
		&airplane.Name,
		&airplane.Rows,
		&airplane.SeatsInRow,
		&airplane.AirplaneTypeID,
		&airplaneType.ID,
		&airplaneType.Name,
	)
	if err != nil {
		return nil, err
	}

	airplane.AirplaneType = &airplaneType
	return &airplane, nil
}

func (r *AirplaneRepositoryImpl) List(ctx context.Context, typeName string) ([]*model.Airplane, error) {
	query := airplaneSelect + `
		WHERE ($1 = '' OR apt.name ILIKE '%' || $1 || '%')
		ORDER BY a.id
	`

	rows, err := r.pool.Query(ctx, query, typeName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airplanes := make([]*model.Airplane, 0)

	for rows.Next() {
		airplane, err := scanAirplane(rows)
		if err != nil {
			return nil, err
		}
		airplanes = append(airplanes, airplane)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return airplanes, nil
}

func (r *AirplaneRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Airplane, error) {
	query := airplaneSelect + `WHERE a.id = $1`

	airplane, err := scanAirplane(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAirplaneNotFound
		}
		return nil, err
	}

	return airplane, nil
}

func (r *AirplaneRepositoryImpl) Create(ctx context.Context, airplane *model.Airplane) (*model.Airplane, error) {
	query := `
		INSERT INTO airplanes (name, "rows", seats_in_row, airplane_type_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		airplane.Name, airplane.Rows, airplane.SeatsInRow, airplane.AirplaneTypeID,
	).Scan(&airplane.ID)

	if err != nil {
		if isForeignKeyViolation(err, "") {
			return nil, apperrors.ErrAirplaneTypeNotFound
		}
		return nil, fmt.Errorf("failed to create airplane: %w", err)
	}

	return r.FindByID(ctx, airplane.ID)
}

func (r *AirplaneRepositoryImpl) Update(ctx context.Context, airplane *model.Airplane) (*model.Airplane, error) {
	query := `
		UPDATE airplanes
		SET name = $1, "rows" = $2, seats_in_row = $3, airplane_type_id = $4
		WHERE id = $5
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		airplane.Name, airplane.Rows, airplane.SeatsInRow, airplane.AirplaneTypeID, airplane.ID,
	).Scan(&airplane.ID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAirplaneNotFound
		}
		if isForeignKeyViolation(err, "") {
			return nil, apperrors.ErrAirplaneTypeNotFound
		}
		return nil, fmt.Errorf("failed to update airplane: %w", err)
	}

	return r.FindByID(ctx, airplane.ID)
}

func (r *AirplaneRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM airplanes WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrAirplaneNotFound
	}

	return nil
}
