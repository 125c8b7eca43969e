package analyses

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo used for dev and tests, keyed by session id.
type MemoryRepo struct {
	mu       sync.RWMutex
	bySessID map[string]Analysis
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{bySessID: make(map[string]Analysis)}
}

func (r *MemoryRepo) Upsert(ctx context.Context, analysis Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	existing, ok := r.bySessID[analysis.SessionID]
	if ok {
		analysis.ID = existing.ID
		analysis.CreatedAt = existing.CreatedAt
	} else if analysis.CreatedAt.IsZero() {
		analysis.CreatedAt = now
	}
	analysis.UpdatedAt = now
	r.bySessID[analysis.SessionID] = analysis
	return nil
}

func (r *MemoryRepo) GetBySession(ctx context.Context, sessionID string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	analysis, ok := r.bySessID[sessionID]
	if !ok {
		return Analysis{}, ErrNotFound
	}
	return analysis, nil
}

var _ Repo = (*MemoryRepo)(nil)
