package reviews

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, review Review) error {
	const query = `
INSERT INTO reviews (id, session_id, supervisor_id, final_status, decision, note, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())
ON CONFLICT (session_id) DO UPDATE SET
  supervisor_id = EXCLUDED.supervisor_id,
  final_status = EXCLUDED.final_status,
  decision = EXCLUDED.decision,
  note = EXCLUDED.note,
  updated_at = now()`
	_, err := r.DB.ExecContext(ctx, query,
		review.ID,
		review.SessionID,
		review.SupervisorID,
		review.FinalStatus,
		review.Decision,
		nullableString(review.Note),
	)
	return err
}

func (r *PGRepo) GetBySession(ctx context.Context, sessionID string) (Review, error) {
	const query = `
SELECT id, session_id, supervisor_id, final_status, decision, note, created_at, updated_at
FROM reviews
WHERE session_id = $1
LIMIT 1`
	var review Review
	var note sql.NullString
	err := r.DB.QueryRowContext(ctx, query, sessionID).Scan(
		&review.ID,
		&review.SessionID,
		&review.SupervisorID,
		&review.FinalStatus,
		&review.Decision,
		&note,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Review{}, ErrNotFound
		}
		return Review{}, err
	}
	if note.Valid {
		review.Note = note.String
	}
	return review, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
