package models

// SessionParticipant describes a member's availability within a session.
// MemberID is the join key between the relational row and the live overlay;
// IsSelected is the only field the overlay is allowed to change.
type SessionParticipant struct {
	ID          string `json:"id,omitempty" db:"id"`
	SessionID   string `json:"session_id" db:"session_id"`
	MemberID    string `json:"member_id" db:"member_id"`
	DisplayName string `json:"display_name" db:"display_name"`
	IsSelected  bool   `json:"is_selected" db:"is_selected"`
}

func ParticipantKey(p SessionParticipant) string {
	return p.MemberID
}
