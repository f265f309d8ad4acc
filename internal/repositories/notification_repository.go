package repositories

import (
	"errors"
	"time"

	"alertnet_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Create(notification *models.Notification) error
	FindByID(id string) (*models.Notification, error)
	FindByUser(userID string, limit, offset int) ([]models.Notification, int64, error)
	FindByAlert(alertID string) ([]models.Notification, error)
	MarkDelivered(id string) error
	DeleteOlderThan(cutoff time.Time) (int64, error)
	CountByStatus(status models.NotificationStatus) (int64, error)
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindByID(id string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) FindByUser(userID string, limit, offset int) ([]models.Notification, int64, error) {
	query := r.db.Model(&models.Notification{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []models.Notification
	err := query.
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&notifications).Error

	return notifications, total, err
}

func (r *NotificationRepositoryImpl) FindByAlert(alertID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.
		Where("alert_id = ?", alertID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepositoryImpl) MarkDelivered(id string) error {
	now := time.Now()
	result := r.db.Model(&models.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       models.NotificationDelivered,
			"delivered_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Delete(&models.Notification{}, "created_at < ?", cutoff)
	return result.RowsAffected, result.Error
}

func (r *NotificationRepositoryImpl) CountByStatus(status models.NotificationStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
