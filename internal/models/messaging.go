package models

import (
	"time"
)

// Message represents a message between users, append-only and
// chronological.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

// NotificationStatus represents the read state of a notification.
type NotificationStatus string

const (
	NotificationUnread NotificationStatus = "unread"
	NotificationRead   NotificationStatus = "read"
)

// Notification represents an entry in a user's notification feed.
// The feed is append-only and newest-first; the read flag is the only
// mutable field.
type Notification struct {
	ID        string             `json:"id"`
	UserID    string             `json:"userId"`
	Message   string             `json:"message"`
	Status    NotificationStatus `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
}
