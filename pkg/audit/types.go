package audit

import "time"

// Record is a single flag evaluation outcome retained for analytics.
type Record struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	FlagName  string    `json:"flag_name"`
	UserID    string    `json:"user_id"`
	Result    bool      `json:"result"`
	Reason    string    `json:"reason"`
}
