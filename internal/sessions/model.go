package sessions

import "time"

// Session represents one completed group session awaiting supervisor review.
// FellowName and GroupCode are display fields resolved from the owning fellow
// and group records.
type Session struct {
	ID           string    `json:"id"`
	FellowID     string    `json:"fellowId"`
	FellowName   string    `json:"fellowName"`
	GroupID      string    `json:"groupId"`
	GroupCode    string    `json:"groupCode"`
	SupervisorID string    `json:"supervisorId"`
	ScheduledAt  time.Time `json:"scheduledAt"`
	CompletedAt  time.Time `json:"completedAt"`
	Transcript   string    `json:"transcript"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Fellow is a lay provider delivering group sessions.
type Fellow struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Group is a cohort of students assigned to a fellow and a supervisor.
type Group struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	FellowID     string    `json:"fellowId"`
	SupervisorID string    `json:"supervisorId"`
	CreatedAt    time.Time `json:"createdAt"`
}
