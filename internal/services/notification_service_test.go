package services

import (
	"testing"
	"time"

	"alertnet_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkDeliveredOwnership(t *testing.T) {
	repo := &fakeNotificationRepo{}
	require.NoError(t, repo.Create(&models.Notification{
		UserID: "owner", Channel: models.ChannelPush,
		Status: models.NotificationSent,
	}))
	id := repo.records[0].ID

	svc := NewNotificationService(repo)

	assert.Error(t, svc.MarkDelivered(id, "someone-else"))
	require.NoError(t, svc.MarkDelivered(id, "owner"))
	assert.Equal(t, models.NotificationDelivered, repo.records[0].Status)
}

func TestMarkDeliveredRequiresSentStatus(t *testing.T) {
	repo := &fakeNotificationRepo{}
	require.NoError(t, repo.Create(&models.Notification{
		UserID: "owner", Channel: models.ChannelEmail,
		Status: models.NotificationFailed,
	}))

	svc := NewNotificationService(repo)
	assert.Error(t, svc.MarkDelivered(repo.records[0].ID, "owner"))
}

func TestNotificationCleanup(t *testing.T) {
	repo := &fakeNotificationRepo{}
	old := models.Notification{UserID: "u", Channel: models.ChannelEmail, Status: models.NotificationSent}
	old.CreatedAt = time.Now().AddDate(0, 0, -120)
	fresh := models.Notification{UserID: "u", Channel: models.ChannelEmail, Status: models.NotificationSent}
	fresh.CreatedAt = time.Now()
	require.NoError(t, repo.Create(&old))
	require.NoError(t, repo.Create(&fresh))

	svc := NewNotificationService(repo)
	removed, err := svc.Cleanup(90)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	assert.Len(t, repo.records, 1)
}
