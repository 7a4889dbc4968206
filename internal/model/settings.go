package model

// NotificationPrefs holds the per-channel notification toggles.
type NotificationPrefs struct {
	Email     bool `json:"email"`
	Push      bool `json:"push"`
	Reminders bool `json:"reminders"`
}

// Settings is the free-form user settings record. It is persisted in its
// own slot, independent of the task collection.
type Settings struct {
	DisplayName   string            `json:"displayName"`
	Email         string            `json:"email"`
	Role          string            `json:"role"`
	Notifications NotificationPrefs `json:"notifications"`
}
