package dashboard

import (
	"time"

	"supervisor-backend/internal/analyses"
	"supervisor-backend/internal/reviews"
)

// SessionSummary is one row of the supervisor's session list.
type SessionSummary struct {
	ID          string    `json:"id"`
	FellowName  string    `json:"fellowName"`
	GroupCode   string    `json:"groupCode"`
	CompletedAt time.Time `json:"completedAt"`
	Status      string    `json:"status"`
	RiskFlag    string    `json:"riskFlag"`
	HasReview   bool      `json:"hasReview"`
}

// SessionDetail is the full session view with joined analysis and review.
type SessionDetail struct {
	ID          string             `json:"id"`
	FellowName  string             `json:"fellowName"`
	GroupCode   string             `json:"groupCode"`
	CompletedAt time.Time          `json:"completedAt"`
	Status      string             `json:"status"`
	Transcript  string             `json:"transcript"`
	Analysis    *analyses.Analysis `json:"analysis"`
	Review      *reviews.Review    `json:"review"`
}
