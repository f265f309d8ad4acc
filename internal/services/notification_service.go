package services

import (
	"errors"
	"time"

	"alertnet_backend/internal/dto"
	"alertnet_backend/internal/models"
	"alertnet_backend/internal/repositories"
	"alertnet_backend/pkg/apperrors"
)

// Notification rows older than this get swept by the maintenance
// worker; the history endpoint only ever pages over recent ones anyway.
const NotificationRetentionDays = 90

type NotificationService interface {
	History(userID string, page, pageSize int) ([]models.Notification, int64, error)
	MarkDelivered(notificationID, userID string) error
	Stats() (*dto.NotificationStats, error)
	Cleanup(retentionDays int) (int64, error)
}

type NotificationServiceImpl struct {
	notifications repositories.NotificationRepository
}

func NewNotificationService(notifications repositories.NotificationRepository) NotificationService {
	return &NotificationServiceImpl{notifications: notifications}
}

func (s *NotificationServiceImpl) History(userID string, page, pageSize int) ([]models.Notification, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	items, total, err := s.notifications.FindByUser(userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return items, total, nil
}

// MarkDelivered is the client-side delivery receipt. Only the owner of
// the record may confirm it.
func (s *NotificationServiceImpl) MarkDelivered(notificationID, userID string) error {
	notification, err := s.notifications.FindByID(notificationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if notification.UserID != userID {
		return apperrors.ErrInsufficientPermissions
	}
	if notification.Status != models.NotificationSent {
		return apperrors.ErrInvalidStatus("notification", "Only sent notifications can be confirmed")
	}

	if err := s.notifications.MarkDelivered(notificationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) Stats() (*dto.NotificationStats, error) {
	stats := &dto.NotificationStats{}

	var err error
	if stats.Sent, err = s.notifications.CountByStatus(models.NotificationSent); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.Failed, err = s.notifications.CountByStatus(models.NotificationFailed); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.Pending, err = s.notifications.CountByStatus(models.NotificationPending); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.Delivered, err = s.notifications.CountByStatus(models.NotificationDelivered); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}

func (s *NotificationServiceImpl) Cleanup(retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		retentionDays = NotificationRetentionDays
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	count, err := s.notifications.DeleteOlderThan(cutoff)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}
