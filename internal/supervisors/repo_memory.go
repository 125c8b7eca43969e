package supervisors

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo used for dev and tests.
type MemoryRepo struct {
	mu          sync.RWMutex
	supervisors map[string]Supervisor
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{supervisors: make(map[string]Supervisor)}
}

func (r *MemoryRepo) Create(ctx context.Context, supervisor Supervisor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if supervisor.CreatedAt.IsZero() {
		supervisor.CreatedAt = time.Now().UTC()
	}
	r.supervisors[supervisor.ID] = supervisor
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, supervisorID string) (Supervisor, error) {
	if err := ctx.Err(); err != nil {
		return Supervisor{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.supervisors[supervisorID]
	if !ok {
		return Supervisor{}, ErrNotFound
	}
	return s, nil
}

func (r *MemoryRepo) GetByEmail(ctx context.Context, email string) (Supervisor, error) {
	if err := ctx.Err(); err != nil {
		return Supervisor{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.supervisors {
		if s.Email == email {
			return s, nil
		}
	}
	return Supervisor{}, ErrNotFound
}

func (r *MemoryRepo) First(ctx context.Context) (Supervisor, error) {
	if err := ctx.Err(); err != nil {
		return Supervisor{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]Supervisor, 0, len(r.supervisors))
	for _, s := range r.supervisors {
		all = append(all, s)
	}
	if len(all) == 0 {
		return Supervisor{}, ErrNotFound
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return all[0], nil
}

var _ Repo = (*MemoryRepo)(nil)
