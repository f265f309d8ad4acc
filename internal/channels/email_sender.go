package channels

import (
	"alertnet_backend/internal/config"
	"alertnet_backend/internal/models"

	"gopkg.in/gomail.v2"
)

// mailDialer is the slice of gomail we use; tests swap in a fake.
type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailSender struct {
	dialer    mailDialer
	fromEmail string
	fromName  string
}

func NewEmailSender(cfg *config.Config) *EmailSender {
	s := &EmailSender{
		fromEmail: cfg.Email.FromEmail,
		fromName:  cfg.Email.FromName,
	}
	if cfg.Email.SMTPHost != "" {
		s.dialer = gomail.NewDialer(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUsername,
			cfg.Email.SMTPPassword,
		)
	}
	return s
}

func (s *EmailSender) Channel() models.NotificationChannel {
	return models.ChannelEmail
}

func (s *EmailSender) Send(user *models.User, content Content) DeliveryResult {
	if s.dialer == nil {
		return DeliveryResult{ProviderError: "email transport not configured"}
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromEmail, s.fromName)
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", content.Subject)
	m.SetBody("text/plain", content.Body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return DeliveryResult{ProviderError: err.Error()}
	}
	return DeliveryResult{Delivered: true}
}
