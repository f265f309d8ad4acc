package channels

import (
	"context"
	"time"

	"alertnet_backend/internal/models"
	"alertnet_backend/internal/push"
	"alertnet_backend/internal/repositories"
)

type PushSender struct {
	devices  repositories.DeviceRepository
	provider push.Provider
	timeout  time.Duration
	ttl      time.Duration
}

func NewPushSender(devices repositories.DeviceRepository, provider push.Provider, timeout, ttl time.Duration) *PushSender {
	return &PushSender{
		devices:  devices,
		provider: provider,
		timeout:  timeout,
		ttl:      ttl,
	}
}

func (s *PushSender) Channel() models.NotificationChannel {
	return models.ChannelPush
}

// Send fans the payload out to every active device of the recipient.
// The attempt counts as delivered when at least one token accepts;
// tokens the provider declares dead are reported for deactivation.
func (s *PushSender) Send(user *models.User, content Content) DeliveryResult {
	devices, err := s.devices.FindActiveByUser(user.ID)
	if err != nil {
		return DeliveryResult{ProviderError: err.Error()}
	}
	if len(devices) == 0 {
		return DeliveryResult{ProviderError: "no active devices"}
	}

	tokens := make([]string, 0, len(devices))
	for _, d := range devices {
		tokens = append(tokens, d.Token)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	results, err := s.provider.Send(ctx, tokens, content.Subject, content.Body, content.Data, s.ttl)
	if err != nil {
		return DeliveryResult{ProviderError: err.Error()}
	}

	var out DeliveryResult
	for _, r := range results {
		if r.OK {
			out.Delivered = true
			if out.ExternalID == "" {
				out.ExternalID = r.MessageID
			}
			continue
		}
		if r.Invalid {
			out.InvalidTokens = append(out.InvalidTokens, r.Token)
		}
		if out.ProviderError == "" {
			out.ProviderError = r.Error
		}
	}
	return out
}
