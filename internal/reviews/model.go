package reviews

import "time"

// Decision classifies how the supervisor's final judgment relates to the
// automated risk flag.
const (
	DecisionValidated  = "VALIDATED"
	DecisionOverridden = "OVERRIDDEN"
)

// Review is the supervisor's final judgment for a session. At most one
// review exists per session; resubmission replaces it.
type Review struct {
	ID           string    `json:"id"`
	SessionID    string    `json:"sessionId"`
	SupervisorID string    `json:"supervisorId"`
	FinalStatus  string    `json:"finalStatus"`
	Decision     string    `json:"decision"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
