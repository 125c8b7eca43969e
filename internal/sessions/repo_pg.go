package sessions

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const sessionColumns = `
s.id, s.fellow_id, f.name, s.group_id, g.code, s.supervisor_id,
s.scheduled_at, s.completed_at, s.transcript, s.status, s.created_at, s.updated_at`

func (r *PGRepo) CreateFellow(ctx context.Context, fellow Fellow) error {
	const query = `
INSERT INTO fellows (id, name, created_at)
VALUES ($1, $2, now())
ON CONFLICT (id) DO NOTHING`
	_, err := r.DB.ExecContext(ctx, query, fellow.ID, fellow.Name)
	return err
}

func (r *PGRepo) CreateGroup(ctx context.Context, group Group) error {
	const query = `
INSERT INTO groups (id, code, fellow_id, supervisor_id, created_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (code) DO NOTHING`
	_, err := r.DB.ExecContext(ctx, query, group.ID, group.Code, group.FellowID, group.SupervisorID)
	return err
}

func (r *PGRepo) Create(ctx context.Context, session Session) error {
	const query = `
INSERT INTO sessions (id, fellow_id, group_id, supervisor_id, scheduled_at, completed_at, transcript, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		session.ID,
		session.FellowID,
		session.GroupID,
		session.SupervisorID,
		session.ScheduledAt,
		session.CompletedAt,
		session.Transcript,
		session.Status,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, sessionID string) (Session, error) {
	query := `
SELECT ` + sessionColumns + `
FROM sessions s
JOIN fellows f ON f.id = s.fellow_id
JOIN groups g ON g.id = s.group_id
WHERE s.id = $1
LIMIT 1`
	return scanSession(r.DB.QueryRowContext(ctx, query, sessionID))
}

func (r *PGRepo) GetForSupervisor(ctx context.Context, supervisorID, sessionID string) (Session, error) {
	query := `
SELECT ` + sessionColumns + `
FROM sessions s
JOIN fellows f ON f.id = s.fellow_id
JOIN groups g ON g.id = s.group_id
WHERE s.id = $1 AND s.supervisor_id = $2
LIMIT 1`
	return scanSession(r.DB.QueryRowContext(ctx, query, sessionID, supervisorID))
}

func (r *PGRepo) ListBySupervisor(ctx context.Context, supervisorID string) ([]Session, error) {
	query := `
SELECT ` + sessionColumns + `
FROM sessions s
JOIN fellows f ON f.id = s.fellow_id
JOIN groups g ON g.id = s.group_id
WHERE s.supervisor_id = $1
ORDER BY s.completed_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, supervisorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		session, err := scanSessionRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, session)
	}
	return out, rows.Err()
}

func (r *PGRepo) UpdateStatus(ctx context.Context, sessionID, status string) error {
	const query = `
UPDATE sessions
SET status = $2, updated_at = now()
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, sessionID, status)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSession(row *sql.Row) (Session, error) {
	var s Session
	err := row.Scan(
		&s.ID, &s.FellowID, &s.FellowName, &s.GroupID, &s.GroupCode, &s.SupervisorID,
		&s.ScheduledAt, &s.CompletedAt, &s.Transcript, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}
	return s, nil
}

func scanSessionRows(rows *sql.Rows) (Session, error) {
	var s Session
	err := rows.Scan(
		&s.ID, &s.FellowID, &s.FellowName, &s.GroupID, &s.GroupCode, &s.SupervisorID,
		&s.ScheduledAt, &s.CompletedAt, &s.Transcript, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

var _ Repo = (*PGRepo)(nil)
