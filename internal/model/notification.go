package model

import "time"

// Notification is a user-facing event record shown in the notifications
// panel. Records are never deleted; the read flag is the only mutation.
type Notification struct {
	// ID is the unique identifier for this notification.
	ID string `json:"id"`

	// Title is the short headline for the record.
	Title string `json:"title"`

	// Message is the human-readable notification text.
	Message string `json:"message"`

	// Time is the display string shown next to the message
	// (e.g. "Just now", "5 minutes ago").
	Time string `json:"time"`

	// Read indicates whether the user has seen this notification.
	Read bool `json:"read"`

	// Icon is a display hint for the panel renderer.
	Icon string `json:"icon"`

	// CreatedAt is when this notification was generated.
	CreatedAt time.Time `json:"created_at"`
}
