package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InitSchema creates all tables if they do not exist. The uniqueness
// constraints on tickets and routes are load-bearing: seat conflicts and
// duplicate routes are detected through them, not through application locks.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			full_name     TEXT NOT NULL,
			role          TEXT NOT NULL DEFAULT 'user',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS airports (
			id               BIGSERIAL PRIMARY KEY,
			name             TEXT NOT NULL,
			closest_big_city TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS routes (
			id             BIGSERIAL PRIMARY KEY,
			source_id      BIGINT NOT NULL REFERENCES airports (id) ON DELETE CASCADE,
			destination_id BIGINT NOT NULL REFERENCES airports (id) ON DELETE CASCADE,
			distance       INTEGER NOT NULL CHECK (distance > 0),
			CONSTRAINT routes_source_destination_distance_key
				UNIQUE (source_id, destination_id, distance)
		)`,
		`CREATE TABLE IF NOT EXISTS airplane_types (
			id   BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS airplanes (
			id               BIGSERIAL PRIMARY KEY,
			name             TEXT NOT NULL,
			"rows"           INTEGER NOT NULL CHECK ("rows" > 0),
			seats_in_row     INTEGER NOT NULL CHECK (seats_in_row > 0),
			airplane_type_id BIGINT NOT NULL REFERENCES airplane_types (id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS crews (
			id         BIGSERIAL PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name  TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS flights (
			id             BIGSERIAL PRIMARY KEY,
			route_id       BIGINT NOT NULL REFERENCES routes (id) ON DELETE CASCADE,
			airplane_id    BIGINT NOT NULL REFERENCES airplanes (id) ON DELETE CASCADE,
			departure_time TIMESTAMPTZ NOT NULL,
			arrival_time   TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS flight_crews (
			flight_id BIGINT NOT NULL REFERENCES flights (id) ON DELETE CASCADE,
			crew_id   BIGINT NOT NULL REFERENCES crews (id) ON DELETE CASCADE,
			PRIMARY KEY (flight_id, crew_id)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id         BIGSERIAL PRIMARY KEY,
			order_uid  UUID NOT NULL UNIQUE,
			user_id    BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS tickets (
			id        BIGSERIAL PRIMARY KEY,
			"row"     INTEGER NOT NULL CHECK ("row" > 0),
			seat      INTEGER NOT NULL CHECK (seat > 0),
			flight_id BIGINT NOT NULL REFERENCES flights (id) ON DELETE CASCADE,
			order_id  BIGINT NOT NULL REFERENCES orders (id) ON DELETE CASCADE,
			CONSTRAINT tickets_flight_row_seat_key UNIQUE (flight_id, "row", seat)
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}
