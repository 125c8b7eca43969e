package supervisors

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "supervisor not found" }

// Repo defines persistence operations for supervisors.
type Repo interface {
	Create(ctx context.Context, supervisor Supervisor) error
	GetByID(ctx context.Context, supervisorID string) (Supervisor, error)
	GetByEmail(ctx context.Context, email string) (Supervisor, error)
	// First returns any supervisor, used by the mock sign-in flow when no
	// email is supplied.
	First(ctx context.Context) (Supervisor, error)
}
