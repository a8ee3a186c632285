package models

import "time"

type SessionStatus string

const (
	SessionStatusOpen   SessionStatus = "open"
	SessionStatusLive   SessionStatus = "live"
	SessionStatusClosed SessionStatus = "closed"
)

// Session is a live-score session (a pickup night, a league evening) that
// members join and play games in.
type Session struct {
	ID        string        `json:"id" db:"id"`
	Name      string        `json:"name" db:"name"`
	Status    SessionStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}
