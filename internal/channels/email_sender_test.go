package channels

import (
	"errors"
	"testing"

	"alertnet_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	err      error
	messages []*gomail.Message
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.messages = append(d.messages, m...)
	return nil
}

func TestEmailSenderDelivers(t *testing.T) {
	dialer := &fakeDialer{}
	sender := &EmailSender{dialer: dialer, fromEmail: "alerts@example.com", fromName: "Community Alert"}

	result := sender.Send(
		&models.User{Email: "dana@example.com"},
		Content{Subject: "subject", Body: "body"},
	)

	assert.True(t, result.Delivered)
	assert.Empty(t, result.ProviderError)
	require.Len(t, dialer.messages, 1)
	assert.Equal(t, []string{"dana@example.com"}, dialer.messages[0].GetHeader("To"))
}

func TestEmailSenderReportsTransportFailure(t *testing.T) {
	sender := &EmailSender{
		dialer:    &fakeDialer{err: errors.New("connection refused")},
		fromEmail: "alerts@example.com",
	}

	result := sender.Send(&models.User{Email: "dana@example.com"}, Content{})
	assert.False(t, result.Delivered)
	assert.Equal(t, "connection refused", result.ProviderError)
}

// An unconfigured transport is a reportable failure, not a panic.
func TestEmailSenderUnconfigured(t *testing.T) {
	sender := &EmailSender{}
	result := sender.Send(&models.User{Email: "dana@example.com"}, Content{})

	assert.False(t, result.Delivered)
	assert.Equal(t, "email transport not configured", result.ProviderError)
}
