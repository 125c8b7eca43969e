package analyses

import (
	"encoding/json"
	"time"
)

// Risk flag values produced by the model for a session transcript.
const (
	FlagSafe = "SAFE"
	FlagRisk = "RISK"
)

// Analysis is the persisted structured output of one model invocation for a
// session. At most one analysis exists per session; re-running analysis
// replaces the record. RawModelResponse retains the decoded model output
// verbatim for audit.
type Analysis struct {
	ID                       string          `json:"id"`
	SessionID                string          `json:"sessionId"`
	Summary                  string          `json:"summary"`
	ContentCoverageScore     int             `json:"contentCoverageScore"`
	ContentCoverageRationale string          `json:"contentCoverageRationale"`
	FacilitationScore        int             `json:"facilitationScore"`
	FacilitationRationale    string          `json:"facilitationRationale"`
	ProtocolSafetyScore      int             `json:"protocolSafetyScore"`
	ProtocolSafetyRationale  string          `json:"protocolSafetyRationale"`
	RiskFlag                 string          `json:"riskFlag"`
	RiskQuote                *string         `json:"riskQuote"`
	RiskRationale            string          `json:"riskRationale"`
	RawModelResponse         json.RawMessage `json:"rawModelResponse"`
	Model                    string          `json:"model"`
	PromptVersion            string          `json:"promptVersion"`
	CreatedAt                time.Time       `json:"createdAt"`
	UpdatedAt                time.Time       `json:"updatedAt"`
}

// fromPayload builds the persisted record from a validated payload.
func fromPayload(id, sessionID string, payload AnalysisPayload, raw json.RawMessage, model, promptVersion string) Analysis {
	return Analysis{
		ID:                       id,
		SessionID:                sessionID,
		Summary:                  payload.Summary,
		ContentCoverageScore:     payload.ContentCoverage.Score,
		ContentCoverageRationale: payload.ContentCoverage.Rationale,
		FacilitationScore:        payload.FacilitationQuality.Score,
		FacilitationRationale:    payload.FacilitationQuality.Rationale,
		ProtocolSafetyScore:      payload.ProtocolSafety.Score,
		ProtocolSafetyRationale:  payload.ProtocolSafety.Rationale,
		RiskFlag:                 payload.Risk.Flag,
		RiskQuote:                payload.Risk.Quote,
		RiskRationale:            payload.Risk.Rationale,
		RawModelResponse:         raw,
		Model:                    model,
		PromptVersion:            promptVersion,
	}
}
