package models

import "time"

// Notification is one row per delivery attempt. The audit trail is
// append-only: rows only ever move pending -> sent|failed and
// sent -> delivered.
type Notification struct {
	BaseModel
	AlertID *string             `gorm:"type:uuid;index" json:"alert_id,omitempty"` // nil for test notifications
	UserID  string              `gorm:"type:uuid;not null;index" json:"user_id"`
	Channel NotificationChannel `gorm:"type:varchar(10);not null;index:idx_notifications_status_channel" json:"channel"`
	Status  NotificationStatus  `gorm:"type:varchar(10);default:'pending';index:idx_notifications_status_channel" json:"status"`

	Title   string `gorm:"not null" json:"title"`
	Message string `gorm:"not null" json:"message"`

	SentAt      *time.Time `json:"sent_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`

	// ErrorMessage holds the provider failure for failed attempts.
	ErrorMessage string `json:"error_message,omitempty"`

	// Provider message id, when the transport returns one.
	ExternalID string `json:"external_id,omitempty"`

	Alert *Alert `gorm:"foreignKey:AlertID" json:"alert,omitempty"`
}
