package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"supervisor-backend/internal/sessions"
	"supervisor-backend/internal/shared/metrics"
	"supervisor-backend/internal/shared/telemetry"
)

var ErrInvalidStatus = errors.New("finalStatus must be SAFE, RISK or NEEDS_DISCUSSION")

// Service reconciles a supervisor's final judgment with the automated result.
type Service struct {
	Repo     Repo
	Sessions sessions.Repo
}

// Submit records the supervisor's final judgment for a session. The decision
// classification is computed from the session status prior to this call, the
// review is upserted by session id, and the session status is set to the
// supervisor's classification. Resubmission replaces the prior review and
// recomputes the decision from the then-current status.
func (s *Service) Submit(ctx context.Context, sessionID, supervisorID, finalStatus, note string) (Review, error) {
	if sessionID == "" || supervisorID == "" {
		return Review{}, errors.New("sessionID and supervisorID are required")
	}
	if !sessions.IsReviewStatus(finalStatus) {
		return Review{}, ErrInvalidStatus
	}

	session, err := s.Sessions.GetForSupervisor(ctx, supervisorID, sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			return Review{}, sessions.ErrNotFound
		}
		return Review{}, fmt.Errorf("session lookup: %w", err)
	}

	review := Review{
		ID:           uuid.NewString(),
		SessionID:    session.ID,
		SupervisorID: supervisorID,
		FinalStatus:  finalStatus,
		Decision:     Decide(session.Status, finalStatus),
		Note:         note,
	}
	if err := s.Repo.Upsert(ctx, review); err != nil {
		return Review{}, fmt.Errorf("store review: %w", err)
	}
	if err := s.Sessions.UpdateStatus(ctx, session.ID, finalStatus); err != nil {
		return Review{}, fmt.Errorf("update session status: %w", err)
	}

	stored, err := s.Repo.GetBySession(ctx, session.ID)
	if err == nil {
		review = stored
	}

	metrics.IncReviewSubmitted()
	telemetry.Info("review.submitted", map[string]any{
		"session_id":        session.ID,
		"supervisor_id":     supervisorID,
		"decision":          review.Decision,
		"status_transition": session.Status + "->" + finalStatus,
	})

	return review, nil
}

// GetBySession returns the stored review for a session.
func (s *Service) GetBySession(ctx context.Context, sessionID string) (Review, error) {
	if sessionID == "" {
		return Review{}, errors.New("sessionID is required")
	}
	return s.Repo.GetBySession(ctx, sessionID)
}
