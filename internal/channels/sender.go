package channels

import (
	"alertnet_backend/internal/models"
)

// Content is a rendered message, ready for any channel. Subject doubles
// as the push title; Data rides along as push payload extras.
type Content struct {
	Subject string
	Body    string
	Data    map[string]string
}

// DeliveryResult reports one send attempt. A sender never returns an
// error: failures are part of the result so the dispatcher can record
// them and keep going.
type DeliveryResult struct {
	Delivered     bool
	ProviderError string
	ExternalID    string

	// Tokens the push provider declared dead. Only ever set by the
	// push sender.
	InvalidTokens []string
}

// Sender delivers rendered content to one recipient over one channel.
type Sender interface {
	Channel() models.NotificationChannel
	Send(user *models.User, content Content) DeliveryResult
}
