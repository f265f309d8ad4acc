package models

import "time"

// Device is a push-capable client installation. Registration upserts on
// (user, token); the dispatcher deactivates tokens the provider rejects
// but never hard-deletes them.
type Device struct {
	BaseModel
	UserID     string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Token      string     `gorm:"not null;uniqueIndex" json:"token"`
	Kind       DeviceKind `gorm:"type:varchar(10);not null" json:"kind"`
	Name       string     `json:"name"`
	IsActive   bool       `gorm:"default:true" json:"is_active"`
	LastUsedAt time.Time  `gorm:"not null;index" json:"last_used_at"`
}
