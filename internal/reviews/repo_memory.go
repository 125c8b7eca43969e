package reviews

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo used for dev and tests, keyed by session id.
type MemoryRepo struct {
	mu       sync.RWMutex
	bySessID map[string]Review
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{bySessID: make(map[string]Review)}
}

func (r *MemoryRepo) Upsert(ctx context.Context, review Review) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	existing, ok := r.bySessID[review.SessionID]
	if ok {
		review.ID = existing.ID
		review.CreatedAt = existing.CreatedAt
	} else if review.CreatedAt.IsZero() {
		review.CreatedAt = now
	}
	review.UpdatedAt = now
	r.bySessID[review.SessionID] = review
	return nil
}

func (r *MemoryRepo) GetBySession(ctx context.Context, sessionID string) (Review, error) {
	if err := ctx.Err(); err != nil {
		return Review{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	review, ok := r.bySessID[sessionID]
	if !ok {
		return Review{}, ErrNotFound
	}
	return review, nil
}

var _ Repo = (*MemoryRepo)(nil)
