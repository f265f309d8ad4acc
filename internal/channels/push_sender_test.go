package channels

import (
	"context"
	"errors"
	"testing"
	"time"

	"alertnet_backend/internal/models"
	"alertnet_backend/internal/push"
	"alertnet_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDeviceRepo struct {
	devices []models.Device
}

func (s *stubDeviceRepo) Create(*models.Device) error { return nil }
func (s *stubDeviceRepo) Update(*models.Device) error { return nil }

func (s *stubDeviceRepo) FindByUserAndToken(userID, token string) (*models.Device, error) {
	return nil, repositories.ErrDeviceNotFound
}

func (s *stubDeviceRepo) FindActiveByUser(userID string) ([]models.Device, error) {
	var out []models.Device
	for _, d := range s.devices {
		if d.UserID == userID && d.IsActive {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *stubDeviceRepo) DeleteByUserAndToken(string, string) (int64, error) { return 0, nil }
func (s *stubDeviceRepo) DeactivateTokens([]string) (int64, error)           { return 0, nil }
func (s *stubDeviceRepo) DeactivateLastUsedBefore(time.Time) (int64, error)  { return 0, nil }

type stubProvider struct {
	results []push.TokenResult
	err     error
	called  bool
	tokens  []string
}

func (p *stubProvider) Send(_ context.Context, tokens []string, _, _ string, _ map[string]string, _ time.Duration) ([]push.TokenResult, error) {
	p.called = true
	p.tokens = tokens
	return p.results, p.err
}

func pushUser() *models.User {
	return &models.User{BaseModel: models.BaseModel{ID: "user-1"}, Email: "u@example.com"}
}

func TestPushSenderShortCircuitsWithoutDevices(t *testing.T) {
	provider := &stubProvider{}
	sender := NewPushSender(&stubDeviceRepo{}, provider, time.Second, time.Hour)

	result := sender.Send(pushUser(), Content{Subject: "t", Body: "b"})

	assert.False(t, result.Delivered)
	assert.Equal(t, "no active devices", result.ProviderError)
	assert.False(t, provider.called, "provider must not be called with zero tokens")
}

func TestPushSenderPartitionsTokenResults(t *testing.T) {
	repo := &stubDeviceRepo{devices: []models.Device{
		{UserID: "user-1", Token: "good", IsActive: true},
		{UserID: "user-1", Token: "dead", IsActive: true},
	}}
	provider := &stubProvider{results: []push.TokenResult{
		{Token: "good", OK: true, MessageID: "mid-1"},
		{Token: "dead", Error: "NotRegistered", Invalid: true},
	}}
	sender := NewPushSender(repo, provider, time.Second, time.Hour)

	result := sender.Send(pushUser(), Content{Subject: "t", Body: "b"})

	assert.True(t, result.Delivered, "one good token is enough")
	assert.Equal(t, "mid-1", result.ExternalID)
	assert.Equal(t, []string{"dead"}, result.InvalidTokens)
	require.Len(t, provider.tokens, 2)
}

func TestPushSenderAllTokensRejected(t *testing.T) {
	repo := &stubDeviceRepo{devices: []models.Device{
		{UserID: "user-1", Token: "dead-1", IsActive: true},
		{UserID: "user-1", Token: "dead-2", IsActive: true},
	}}
	provider := &stubProvider{results: []push.TokenResult{
		{Token: "dead-1", Error: "NotRegistered", Invalid: true},
		{Token: "dead-2", Error: "InvalidRegistration", Invalid: true},
	}}
	sender := NewPushSender(repo, provider, time.Second, time.Hour)

	result := sender.Send(pushUser(), Content{})

	assert.False(t, result.Delivered)
	assert.ElementsMatch(t, []string{"dead-1", "dead-2"}, result.InvalidTokens)
	assert.Equal(t, "NotRegistered", result.ProviderError)
}

// A provider-level failure becomes a failed result, never a panic or an
// error return.
func TestPushSenderProviderErrorIsContained(t *testing.T) {
	repo := &stubDeviceRepo{devices: []models.Device{
		{UserID: "user-1", Token: "good", IsActive: true},
	}}
	provider := &stubProvider{err: errors.New("fcm unreachable")}
	sender := NewPushSender(repo, provider, time.Second, time.Hour)

	result := sender.Send(pushUser(), Content{})

	assert.False(t, result.Delivered)
	assert.Equal(t, "fcm unreachable", result.ProviderError)
	assert.Empty(t, result.InvalidTokens)
}
