package analyses

import "context"

// Repo defines persistence operations for analyses. Upsert is keyed by
// session id: a re-run replaces the prior record rather than duplicating it.
type Repo interface {
	Upsert(ctx context.Context, analysis Analysis) error
	GetBySession(ctx context.Context, sessionID string) (Analysis, error)
}
