package analyses

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"

	"supervisor-backend/internal/extract"
	"supervisor-backend/internal/llm"
	"supervisor-backend/internal/sessions"
	"supervisor-backend/internal/shared/metrics"
	"supervisor-backend/internal/shared/telemetry"
)

// Low temperature keeps the safety classification close to the literal
// rubric; reducing run-to-run variance matters more than output diversity.
const samplingTemperature = 0.1

// Service orchestrates one analysis run: fetch transcript, invoke the model,
// extract, validate, persist, advance session status.
type Service struct {
	Repo          Repo
	Sessions      sessions.Repo
	LLM           llm.Client
	Rubric        string
	Model         string
	PromptVersion string
}

// Run performs a full analysis of the session's transcript. A failed run
// writes nothing and leaves the session status unchanged, so callers may
// retry the whole operation; a successful re-run replaces the prior analysis.
func (s *Service) Run(ctx context.Context, sessionID string) (AnalysisPayload, error) {
	if sessionID == "" {
		return AnalysisPayload{}, pipelineErr(ErrorCodeNotFound, "session id is required", nil)
	}
	if s.LLM == nil || s.Rubric == "" {
		return AnalysisPayload{}, pipelineErr(ErrorCodeConfigurationMissing, "model client is not configured", nil)
	}

	session, err := s.Sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			return AnalysisPayload{}, pipelineErr(ErrorCodeNotFound, "session not found", err)
		}
		return AnalysisPayload{}, pipelineErr(ErrorCodePersistenceFailure, "session lookup failed", err)
	}

	metrics.IncAnalysisStarted()
	startedMs := metrics.NowMillis()

	raw, err := s.LLM.Complete(ctx, llm.CompletionRequest{
		System:      s.Rubric,
		User:        BuildUserContent(session.Transcript),
		Temperature: samplingTemperature,
	})
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return AnalysisPayload{}, s.fail(sessionID, pipelineErr(ErrorCodeConfigurationMissing, "model client is not configured", err))
		}
		return AnalysisPayload{}, s.fail(sessionID, pipelineErr(ErrorCodeEmptyResponse, "model call failed", err))
	}
	if strings.TrimSpace(raw) == "" {
		return AnalysisPayload{}, s.fail(sessionID, pipelineErr(ErrorCodeEmptyResponse, "model returned no text", nil))
	}

	cleaned := extract.StripFences(raw)

	var decoded any
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		perr := pipelineErr(ErrorCodeMalformedResponse, "model response is not valid JSON", err)
		perr.Raw = raw
		return AnalysisPayload{}, s.fail(sessionID, perr)
	}

	payload, violations := ValidatePayload(decoded)
	if len(violations) > 0 {
		perr := pipelineErr(ErrorCodeInvalidSchema, "model response failed schema validation", nil)
		perr.Raw = raw
		perr.Fields = violations
		return AnalysisPayload{}, s.fail(sessionID, perr)
	}

	analysis := fromPayload(uuid.NewString(), session.ID, payload, json.RawMessage(cleaned), s.Model, s.PromptVersion)
	if err := s.Repo.Upsert(ctx, analysis); err != nil {
		return AnalysisPayload{}, s.fail(sessionID, pipelineErr(ErrorCodePersistenceFailure, "failed to store analysis", err))
	}

	newStatus := sessions.StatusProcessed
	if payload.Risk.Flag == FlagRisk {
		newStatus = sessions.StatusRisk
	}
	if err := s.Sessions.UpdateStatus(ctx, session.ID, newStatus); err != nil {
		return AnalysisPayload{}, s.fail(sessionID, pipelineErr(ErrorCodePersistenceFailure, "failed to update session status", err))
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(metrics.NowMillis() - startedMs)
	telemetry.Info("analysis.status", map[string]any{
		"session_id":        session.ID,
		"risk_flag":         payload.Risk.Flag,
		"status_transition": session.Status + "->" + newStatus,
		"model":             s.Model,
		"prompt_version":    s.PromptVersion,
	})

	return payload, nil
}

// GetBySession returns the stored analysis for a session.
func (s *Service) GetBySession(ctx context.Context, sessionID string) (Analysis, error) {
	if sessionID == "" {
		return Analysis{}, errors.New("sessionID is required")
	}
	return s.Repo.GetBySession(ctx, sessionID)
}

func (s *Service) fail(sessionID string, perr *PipelineError) error {
	metrics.IncAnalysisFailed()
	fields := map[string]any{
		"session_id": sessionID,
		"code":       perr.Code,
		"message":    perr.Message,
	}
	if len(perr.Fields) > 0 {
		fields["violations"] = perr.Fields
	}
	if perr.Err != nil {
		fields["error"] = perr.Err.Error()
	}
	telemetry.Error("analysis.failed", fields)
	return perr
}
