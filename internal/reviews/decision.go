package reviews

import "supervisor-backend/internal/sessions"

// Decide computes the decision classification from the session status
// immediately prior to the review and the supervisor's final classification.
// Agreement is rewarded only on the RISK class: the human confirming the
// machine's risk call is a validation, everything else is an override. A
// reclassification away from RISK and a risk call the machine missed are both
// overrides.
func Decide(priorStatus, finalStatus string) string {
	if priorStatus == sessions.StatusRisk && finalStatus == sessions.StatusRisk {
		return DecisionValidated
	}
	return DecisionOverridden
}
