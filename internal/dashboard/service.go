package dashboard

import (
	"context"
	"errors"
	"fmt"

	"supervisor-backend/internal/analyses"
	"supervisor-backend/internal/reviews"
	"supervisor-backend/internal/sessions"
)

// Service assembles read-only session views for the supervisor dashboard.
type Service struct {
	Sessions sessions.Repo
	Analyses analyses.Repo
	Reviews  reviews.Repo
}

// List returns the supervisor's sessions ordered by completion time
// descending. Sessions without an analysis report a SAFE risk flag.
func (s *Service) List(ctx context.Context, supervisorID string) ([]SessionSummary, error) {
	if supervisorID == "" {
		return nil, errors.New("supervisorID is required")
	}

	all, err := s.Sessions.ListBySupervisor(ctx, supervisorID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	out := make([]SessionSummary, 0, len(all))
	for _, session := range all {
		summary := SessionSummary{
			ID:          session.ID,
			FellowName:  session.FellowName,
			GroupCode:   session.GroupCode,
			CompletedAt: session.CompletedAt,
			Status:      session.Status,
			RiskFlag:    analyses.FlagSafe,
		}

		analysis, err := s.Analyses.GetBySession(ctx, session.ID)
		switch {
		case err == nil:
			summary.RiskFlag = analysis.RiskFlag
		case errors.Is(err, analyses.ErrNotFound):
			// no analysis yet
		default:
			return nil, fmt.Errorf("analysis lookup session=%s: %w", session.ID, err)
		}

		if _, err := s.Reviews.GetBySession(ctx, session.ID); err == nil {
			summary.HasReview = true
		} else if !errors.Is(err, reviews.ErrNotFound) {
			return nil, fmt.Errorf("review lookup session=%s: %w", session.ID, err)
		}

		out = append(out, summary)
	}
	return out, nil
}

// Get returns one session with its analysis and review joined, scoped to the
// owning supervisor. The read has no side effects.
func (s *Service) Get(ctx context.Context, supervisorID, sessionID string) (SessionDetail, error) {
	if supervisorID == "" || sessionID == "" {
		return SessionDetail{}, errors.New("supervisorID and sessionID are required")
	}

	session, err := s.Sessions.GetForSupervisor(ctx, supervisorID, sessionID)
	if err != nil {
		return SessionDetail{}, err
	}

	detail := SessionDetail{
		ID:          session.ID,
		FellowName:  session.FellowName,
		GroupCode:   session.GroupCode,
		CompletedAt: session.CompletedAt,
		Status:      session.Status,
		Transcript:  session.Transcript,
	}

	analysis, err := s.Analyses.GetBySession(ctx, session.ID)
	switch {
	case err == nil:
		detail.Analysis = &analysis
	case errors.Is(err, analyses.ErrNotFound):
	default:
		return SessionDetail{}, fmt.Errorf("analysis lookup: %w", err)
	}

	review, err := s.Reviews.GetBySession(ctx, session.ID)
	switch {
	case err == nil:
		detail.Review = &review
	case errors.Is(err, reviews.ErrNotFound):
	default:
		return SessionDetail{}, fmt.Errorf("review lookup: %w", err)
	}

	return detail, nil
}
