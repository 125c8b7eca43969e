package reviews

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "review not found" }

// Repo defines persistence operations for reviews, keyed by session id with
// insert-or-replace semantics.
type Repo interface {
	Upsert(ctx context.Context, review Review) error
	GetBySession(ctx context.Context, sessionID string) (Review, error)
}
