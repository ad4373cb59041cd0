package attempts

import "time"

// Attempt is a logged README download attempt.
type Attempt struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id,omitempty"`
	DocID      string    `json:"doc_id"`
	URL        string    `json:"url"`
	Status     int       `json:"status,omitempty"`
	Outcome    string    `json:"outcome"`
	Error      string    `json:"error,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}
