package domain

import "time"

// AuditEntry records a successful write for the asynchronous audit trail.
type AuditEntry struct {
	Actor    string    `json:"actor"`
	Role     string    `json:"role"`
	Action   string    `json:"action"`
	Resource string    `json:"resource"`
	Detail   string    `json:"detail,omitempty"`
	At       time.Time `json:"at"`
}
