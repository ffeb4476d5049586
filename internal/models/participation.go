package models

import "time"

// Participation is unique per (UserID, EventID).
type Participation struct {
	ID       int       `json:"id"`
	EventID  int       `json:"event_id"`
	UserID   string    `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}

// JoinedEvent is an event as seen from the profile of a participant.
type JoinedEvent struct {
	Event
	JoinedAt time.Time `json:"joined_at"`
}
