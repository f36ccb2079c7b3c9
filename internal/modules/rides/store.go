// README: Ride request store backed by PostgreSQL.
package rides

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the ride_requests table when missing. The schema is a
// single table, so this replaces a migration tool.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS ride_requests (
            id              BIGSERIAL PRIMARY KEY,
            ref             UUID NOT NULL UNIQUE,
            user_id         VARCHAR(50) NOT NULL,
            source_location VARCHAR(255) NOT NULL,
            dest_location   VARCHAR(255) NOT NULL,
            status          VARCHAR(20) NOT NULL DEFAULT 'pending',
            created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
        )`)
	return err
}

func (s *Store) Create(ctx context.Context, r *RideRequest) error {
	return s.db.QueryRow(ctx, `
        INSERT INTO ride_requests (ref, user_id, source_location, dest_location, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`,
		r.Ref, r.UserID, r.SourceLocation, r.DestLocation, string(r.Status),
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
}

func (s *Store) Get(ctx context.Context, id int64) (RideRequest, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, ref, user_id, source_location, dest_location, status, created_at, updated_at
        FROM ride_requests
        WHERE id = $1`, id,
	)

	var r RideRequest
	err := row.Scan(&r.ID, &r.Ref, &r.UserID, &r.SourceLocation, &r.DestLocation, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return RideRequest{}, ErrNotFound
	}
	if err != nil {
		return RideRequest{}, err
	}
	return r, nil
}

func (s *Store) List(ctx context.Context) ([]RideRequest, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, ref, user_id, source_location, dest_location, status, created_at, updated_at
        FROM ride_requests
        ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []RideRequest{}
	for rows.Next() {
		var r RideRequest
		if err := rows.Scan(&r.ID, &r.Ref, &r.UserID, &r.SourceLocation, &r.DestLocation, &r.Status, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) UpdateStatus(ctx context.Context, id int64, status Status) (RideRequest, error) {
	row := s.db.QueryRow(ctx, `
        UPDATE ride_requests
        SET status = $1, updated_at = now()
        WHERE id = $2
        RETURNING id, ref, user_id, source_location, dest_location, status, created_at, updated_at`,
		string(status), id,
	)

	var r RideRequest
	err := row.Scan(&r.ID, &r.Ref, &r.UserID, &r.SourceLocation, &r.DestLocation, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return RideRequest{}, ErrNotFound
	}
	if err != nil {
		return RideRequest{}, err
	}
	return r, nil
}
