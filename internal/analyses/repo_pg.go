package analyses

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres. The UNIQUE constraint on session_id
// gives the insert-or-replace semantics the pipeline relies on.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (
	id, session_id, summary,
	content_coverage_score, content_coverage_rationale,
	facilitation_score, facilitation_rationale,
	protocol_safety_score, protocol_safety_rationale,
	risk_flag, risk_quote, risk_rationale,
	raw_model_response, model, prompt_version, created_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now(), now())
ON CONFLICT (session_id) DO UPDATE SET
  summary = EXCLUDED.summary,
  content_coverage_score = EXCLUDED.content_coverage_score,
  content_coverage_rationale = EXCLUDED.content_coverage_rationale,
  facilitation_score = EXCLUDED.facilitation_score,
  facilitation_rationale = EXCLUDED.facilitation_rationale,
  protocol_safety_score = EXCLUDED.protocol_safety_score,
  protocol_safety_rationale = EXCLUDED.protocol_safety_rationale,
  risk_flag = EXCLUDED.risk_flag,
  risk_quote = EXCLUDED.risk_quote,
  risk_rationale = EXCLUDED.risk_rationale,
  raw_model_response = EXCLUDED.raw_model_response,
  model = EXCLUDED.model,
  prompt_version = EXCLUDED.prompt_version,
  updated_at = now()`
	_, err := r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.SessionID,
		analysis.Summary,
		analysis.ContentCoverageScore,
		analysis.ContentCoverageRationale,
		analysis.FacilitationScore,
		analysis.FacilitationRationale,
		analysis.ProtocolSafetyScore,
		analysis.ProtocolSafetyRationale,
		analysis.RiskFlag,
		nullableString(analysis.RiskQuote),
		analysis.RiskRationale,
		[]byte(analysis.RawModelResponse),
		analysis.Model,
		analysis.PromptVersion,
	)
	return err
}

func (r *PGRepo) GetBySession(ctx context.Context, sessionID string) (Analysis, error) {
	const query = `
SELECT id, session_id, summary,
       content_coverage_score, content_coverage_rationale,
       facilitation_score, facilitation_rationale,
       protocol_safety_score, protocol_safety_rationale,
       risk_flag, risk_quote, risk_rationale,
       raw_model_response, model, prompt_version, created_at, updated_at
FROM analyses
WHERE session_id = $1
LIMIT 1`
	var a Analysis
	var riskQuote sql.NullString
	var raw []byte
	err := r.DB.QueryRowContext(ctx, query, sessionID).Scan(
		&a.ID,
		&a.SessionID,
		&a.Summary,
		&a.ContentCoverageScore,
		&a.ContentCoverageRationale,
		&a.FacilitationScore,
		&a.FacilitationRationale,
		&a.ProtocolSafetyScore,
		&a.ProtocolSafetyRationale,
		&a.RiskFlag,
		&riskQuote,
		&a.RiskRationale,
		&raw,
		&a.Model,
		&a.PromptVersion,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	if riskQuote.Valid {
		a.RiskQuote = &riskQuote.String
	}
	a.RawModelResponse = raw
	return a, nil
}

func nullableString(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}

var _ Repo = (*PGRepo)(nil)
