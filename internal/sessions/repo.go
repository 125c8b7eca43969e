package sessions

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "session not found" }

// Repo defines persistence operations for sessions and their owning fellow
// and group records.
type Repo interface {
	CreateFellow(ctx context.Context, fellow Fellow) error
	CreateGroup(ctx context.Context, group Group) error
	Create(ctx context.Context, session Session) error
	GetByID(ctx context.Context, sessionID string) (Session, error)
	// GetForSupervisor returns the session only when owned by the supervisor.
	GetForSupervisor(ctx context.Context, supervisorID, sessionID string) (Session, error)
	// ListBySupervisor returns the supervisor's sessions ordered by
	// completion time descending.
	ListBySupervisor(ctx context.Context, supervisorID string) ([]Session, error)
	UpdateStatus(ctx context.Context, sessionID, status string) error
}
