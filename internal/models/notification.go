package models

// Notification is one in-app alert for an event whose reminder lead time
// has been reached. Notifications live in detection order and are removed
// individually by position when dismissed.
type Notification struct {
	ID      string `json:"id"` // event id
	Message string `json:"message"`
}
