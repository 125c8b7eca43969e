package supervisors

import "time"

// Supervisor is a Tier 2 supervisor who reviews sessions.
type Supervisor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Tier      string    `json:"tier"`
	CreatedAt time.Time `json:"createdAt"`
}
