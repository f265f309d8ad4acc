package models

import "strings"

type UserRole string
type AlertSeverity string
type AlertStatus string
type VoteType string
type DeviceKind string
type NotificationChannel string
type NotificationStatus string
type MediaType string

const (
	UserRoleMember    UserRole = "member"
	UserRoleModerator UserRole = "moderator"
	UserRoleAdmin     UserRole = "admin"

	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"

	AlertStatusActive      AlertStatus = "active"
	AlertStatusResolved    AlertStatus = "resolved"
	AlertStatusFalseAlarm  AlertStatus = "false_alarm"
	AlertStatusUnderReview AlertStatus = "under_review"

	VoteUp   VoteType = "up"
	VoteDown VoteType = "down"

	DeviceKindAndroid DeviceKind = "android"
	DeviceKindIOS     DeviceKind = "ios"
	DeviceKindWeb     DeviceKind = "web"

	ChannelEmail NotificationChannel = "email"
	ChannelPush  NotificationChannel = "push"
	ChannelSMS   NotificationChannel = "sms"

	NotificationPending   NotificationStatus = "pending"
	NotificationSent      NotificationStatus = "sent"
	NotificationFailed    NotificationStatus = "failed"
	NotificationDelivered NotificationStatus = "delivered"

	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// Display returns the human-readable form used in notification subjects
// ("low" -> "Low", "false_alarm" -> "False Alarm").
func display(raw string) string {
	parts := strings.Split(raw, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

func (s AlertSeverity) Display() string { return display(string(s)) }
func (s AlertStatus) Display() string   { return display(string(s)) }

func (s AlertSeverity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

func (s AlertStatus) Valid() bool {
	switch s {
	case AlertStatusActive, AlertStatusResolved, AlertStatusFalseAlarm, AlertStatusUnderReview:
		return true
	}
	return false
}

func (v VoteType) Valid() bool {
	return v == VoteUp || v == VoteDown
}

func (k DeviceKind) Valid() bool {
	switch k {
	case DeviceKindAndroid, DeviceKindIOS, DeviceKindWeb:
		return true
	}
	return false
}
