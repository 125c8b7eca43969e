package sessions

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo used for dev and tests. Sessions carry
// their display fields directly, so fellow and group records are kept only
// to resolve names at session creation.
type MemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]Session
	fellows  map[string]Fellow
	groups   map[string]Group
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		sessions: make(map[string]Session),
		fellows:  make(map[string]Fellow),
		groups:   make(map[string]Group),
	}
}

func (r *MemoryRepo) CreateFellow(ctx context.Context, fellow Fellow) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if fellow.CreatedAt.IsZero() {
		fellow.CreatedAt = time.Now().UTC()
	}
	r.fellows[fellow.ID] = fellow
	return nil
}

func (r *MemoryRepo) CreateGroup(ctx context.Context, group Group) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if group.CreatedAt.IsZero() {
		group.CreatedAt = time.Now().UTC()
	}
	r.groups[group.ID] = group
	return nil
}

func (r *MemoryRepo) Create(ctx context.Context, session Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now
	if session.Status == "" {
		session.Status = StatusAwaitingAnalysis
	}
	if session.FellowName == "" {
		if fellow, ok := r.fellows[session.FellowID]; ok {
			session.FellowName = fellow.Name
		}
	}
	if session.GroupCode == "" {
		if group, ok := r.groups[session.GroupID]; ok {
			session.GroupCode = group.Code
		}
	}
	r.sessions[session.ID] = session
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, sessionID string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return Session{}, ErrNotFound
	}
	return session, nil
}

func (r *MemoryRepo) GetForSupervisor(ctx context.Context, supervisorID, sessionID string) (Session, error) {
	session, err := r.GetByID(ctx, sessionID)
	if err != nil {
		return Session{}, err
	}
	if session.SupervisorID != supervisorID {
		return Session{}, ErrNotFound
	}
	return session, nil
}

func (r *MemoryRepo) ListBySupervisor(ctx context.Context, supervisorID string) ([]Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Session
	for _, session := range r.sessions {
		if session.SupervisorID == supervisorID {
			out = append(out, session)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CompletedAt.After(out[j].CompletedAt)
	})
	return out, nil
}

func (r *MemoryRepo) UpdateStatus(ctx context.Context, sessionID, status string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	session.Status = status
	session.UpdatedAt = time.Now().UTC()
	r.sessions[sessionID] = session
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
