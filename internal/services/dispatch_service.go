package services

import (
	"time"

	"alertnet_backend/internal/channels"
	"alertnet_backend/internal/config"
	"alertnet_backend/internal/logger"
	"alertnet_backend/internal/models"
	"alertnet_backend/internal/repositories"
	"alertnet_backend/pkg/apperrors"
)

// DispatchService fans one alert out to its audience across every
// configured channel.
type DispatchService interface {
	// DispatchAlert returns the number of successful deliveries. It
	// never returns an error: per-recipient failures are recorded and
	// must not abort the remaining fan-out.
	DispatchAlert(alert *models.Alert) int

	// SendTest exercises each of the user's enabled channels with a
	// canned payload and returns the resulting records.
	SendTest(userID string) ([]models.Notification, error)
}

type DispatchServiceImpl struct {
	resolver      RecipientResolver
	senders       []channels.Sender
	users         repositories.UserRepository
	devices       repositories.DeviceRepository
	notifications repositories.NotificationRepository
	trigger       string
	baseURL       string
}

func NewDispatchService(
	resolver RecipientResolver,
	senders []channels.Sender,
	users repositories.UserRepository,
	devices repositories.DeviceRepository,
	notifications repositories.NotificationRepository,
	trigger string,
	baseURL string,
) DispatchService {
	return &DispatchServiceImpl{
		resolver:      resolver,
		senders:       senders,
		users:         users,
		devices:       devices,
		notifications: notifications,
		trigger:       trigger,
		baseURL:       baseURL,
	}
}

// shouldNotify applies the trigger policy. Private alerts never fan
// out; under the high-severity trigger neither do low or medium ones.
func (s *DispatchServiceImpl) shouldNotify(alert *models.Alert) bool {
	if !alert.IsPublic {
		return false
	}
	if s.trigger == config.TriggerHighSeverity {
		return alert.Severity == models.SeverityHigh || alert.Severity == models.SeverityCritical
	}
	return true
}

func (s *DispatchServiceImpl) renderFor(channel models.NotificationChannel, alert *models.Alert, user *models.User) channels.Content {
	if channel == models.ChannelEmail {
		return channels.RenderEmail(alert, user, s.baseURL)
	}
	return channels.RenderPush(alert)
}

func (s *DispatchServiceImpl) DispatchAlert(alert *models.Alert) int {
	if !s.shouldNotify(alert) {
		return 0
	}

	var (
		delivered     int
		invalidTokens []string
	)

	for _, sender := range s.senders {
		channel := sender.Channel()

		recipients, err := s.resolver.Resolve(alert, channel)
		if err != nil {
			logger.Error("recipient resolution failed",
				"alert_id", alert.ID, "channel", channel, "error", err)
			continue
		}

		for i := range recipients {
			user := &recipients[i]
			content := s.renderFor(channel, alert, user)
			result := sender.Send(user, content)

			invalidTokens = append(invalidTokens, result.InvalidTokens...)
			if n := s.record(alert, user, channel, content, result); n.Status == models.NotificationSent {
				delivered++
			}
		}
	}

	// One sweep per dispatch, however many users shared a dead token.
	if len(invalidTokens) > 0 {
		if n, err := s.devices.DeactivateTokens(invalidTokens); err != nil {
			logger.Error("token deactivation failed", "alert_id", alert.ID, "error", err)
		} else {
			logger.Info("deactivated invalid device tokens", "alert_id", alert.ID, "count", n)
		}
	}

	logger.Info("alert dispatched",
		"alert_id", alert.ID, "severity", alert.Severity, "delivered", delivered)
	return delivered
}

// record persists exactly one terminal Notification per attempt.
func (s *DispatchServiceImpl) record(alert *models.Alert, user *models.User, channel models.NotificationChannel, content channels.Content, result channels.DeliveryResult) *models.Notification {
	notification := models.Notification{
		UserID:  user.ID,
		Channel: channel,
		Title:   content.Subject,
		Message: content.Body,
	}
	if alert != nil {
		alertID := alert.ID
		notification.AlertID = &alertID
	}

	if result.Delivered {
		now := time.Now()
		notification.Status = models.NotificationSent
		notification.SentAt = &now
		notification.ExternalID = result.ExternalID
	} else {
		notification.Status = models.NotificationFailed
		notification.ErrorMessage = result.ProviderError
		logger.Warn("notification delivery failed",
			"user_id", user.ID, "channel", channel, "error", result.ProviderError)
	}

	if err := s.notifications.Create(&notification); err != nil {
		logger.Error("failed to persist notification record",
			"user_id", user.ID, "channel", channel, "error", err)
	}
	return &notification
}

func (s *DispatchServiceImpl) SendTest(userID string) ([]models.Notification, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	var records []models.Notification
	var invalidTokens []string

	for _, sender := range s.senders {
		channel := sender.Channel()
		if !user.ChannelEnabled(channel) {
			continue
		}

		content := channels.RenderTest(channel)
		result := sender.Send(user, content)
		invalidTokens = append(invalidTokens, result.InvalidTokens...)
		records = append(records, *s.record(nil, user, channel, content, result))
	}

	if len(invalidTokens) > 0 {
		if _, err := s.devices.DeactivateTokens(invalidTokens); err != nil {
			logger.Error("token deactivation failed", "user_id", userID, "error", err)
		}
	}
	return records, nil
}
