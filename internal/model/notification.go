package model

import "time"

// NotificationType tags the event a notification describes.
type NotificationType string

const (
	NotificationOrder NotificationType = "order"
)

// Notification is an in-session message created as a side effect of an
// engine operation. The read flag only ever moves false -> true.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}
