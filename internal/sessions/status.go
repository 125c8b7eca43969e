package sessions

// Session lifecycle statuses. A session starts AWAITING_ANALYSIS, moves to
// PROCESSED or RISK when the analysis pipeline completes, and lands on the
// supervisor's final classification once reviewed. Review transitions are
// re-entrant: a supervisor may revise a decision and the status is overwritten.
const (
	StatusAwaitingAnalysis = "AWAITING_ANALYSIS"
	StatusProcessed        = "PROCESSED"
	StatusRisk             = "RISK"
	StatusSafe             = "SAFE"
	StatusNeedsDiscussion  = "NEEDS_DISCUSSION"
)

// IsStatus reports whether s is a known session status.
func IsStatus(s string) bool {
	switch s {
	case StatusAwaitingAnalysis, StatusProcessed, StatusRisk, StatusSafe, StatusNeedsDiscussion:
		return true
	}
	return false
}

// IsReviewStatus reports whether s is a legal supervisor final classification.
func IsReviewStatus(s string) bool {
	switch s {
	case StatusSafe, StatusRisk, StatusNeedsDiscussion:
		return true
	}
	return false
}

// ValidTransition reports whether moving from one status to another is legal.
// Analysis advances AWAITING_ANALYSIS to PROCESSED or RISK (re-running an
// analysis replaces the record and recomputes the same transition). A review
// may set any final classification from any status, including resubmission
// over a previous final classification.
func ValidTransition(from, to string) bool {
	if !IsStatus(from) || !IsStatus(to) {
		return false
	}
	switch to {
	case StatusAwaitingAnalysis:
		return false
	case StatusProcessed:
		return from == StatusAwaitingAnalysis || from == StatusProcessed || from == StatusRisk
	case StatusRisk:
		// RISK is reachable both from the pipeline and from a review.
		return true
	case StatusSafe, StatusNeedsDiscussion:
		return true
	}
	return false
}
