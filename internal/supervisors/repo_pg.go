package supervisors

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, supervisor Supervisor) error {
	const query = `
INSERT INTO supervisors (id, name, email, tier, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (email) DO UPDATE SET
  name = EXCLUDED.name,
  tier = EXCLUDED.tier`
	_, err := r.DB.ExecContext(ctx, query,
		supervisor.ID,
		supervisor.Name,
		supervisor.Email,
		supervisor.Tier,
		supervisor.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, supervisorID string) (Supervisor, error) {
	const query = `
SELECT id, name, email, tier, created_at
FROM supervisors
WHERE id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, supervisorID))
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (Supervisor, error) {
	const query = `
SELECT id, name, email, tier, created_at
FROM supervisors
WHERE email = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

func (r *PGRepo) First(ctx context.Context) (Supervisor, error) {
	const query = `
SELECT id, name, email, tier, created_at
FROM supervisors
ORDER BY created_at
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query))
}

func (r *PGRepo) scanOne(row *sql.Row) (Supervisor, error) {
	var s Supervisor
	err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Tier, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Supervisor{}, ErrNotFound
		}
		return Supervisor{}, err
	}
	return s, nil
}
