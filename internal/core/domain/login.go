package domain

import "time"

// LoginAttempt is an audit record of a single POST /login.
type LoginAttempt struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	Success   bool      `json:"success"`
	Reason    string    `json:"reason,omitempty"`
	At        time.Time `json:"at"`
}
