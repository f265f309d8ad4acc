package repositories

import (
	"errors"
	"time"

	"alertnet_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDeviceNotFound = errors.New("device not found")

type DeviceRepository interface {
	Create(device *models.Device) error
	Update(device *models.Device) error
	FindByUserAndToken(userID, token string) (*models.Device, error)
	FindActiveByUser(userID string) ([]models.Device, error)

	// DeleteByUserAndToken removes the matching record and reports how
	// many rows went away; zero is not an error (unregister is idempotent).
	DeleteByUserAndToken(userID, token string) (int64, error)

	// DeactivateTokens flips is_active off for the given tokens; used when
	// the push provider rejects them.
	DeactivateTokens(tokens []string) (int64, error)

	// DeactivateLastUsedBefore bulk-deactivates devices unseen since the
	// cutoff. Periodic staleness sweep, not a delete.
	DeactivateLastUsedBefore(cutoff time.Time) (int64, error)
}

type DeviceRepositoryImpl struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &DeviceRepositoryImpl{db: db}
}

func (r *DeviceRepositoryImpl) Create(device *models.Device) error {
	return r.db.Create(device).Error
}

func (r *DeviceRepositoryImpl) Update(device *models.Device) error {
	return r.db.Save(device).Error
}

func (r *DeviceRepositoryImpl) FindByUserAndToken(userID, token string) (*models.Device, error) {
	var device models.Device
	err := r.db.First(&device, "user_id = ? AND token = ?", userID, token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}
	return &device, nil
}

func (r *DeviceRepositoryImpl) FindActiveByUser(userID string) ([]models.Device, error) {
	var devices []models.Device
	err := r.db.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("last_used_at DESC").
		Find(&devices).Error
	return devices, err
}

func (r *DeviceRepositoryImpl) DeleteByUserAndToken(userID, token string) (int64, error) {
	result := r.db.Delete(&models.Device{}, "user_id = ? AND token = ?", userID, token)
	return result.RowsAffected, result.Error
}

func (r *DeviceRepositoryImpl) DeactivateTokens(tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.Device{}).
		Where("token IN ?", tokens).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

func (r *DeviceRepositoryImpl) DeactivateLastUsedBefore(cutoff time.Time) (int64, error) {
	result := r.db.Model(&models.Device{}).
		Where("is_active = ? AND last_used_at < ?", true, cutoff).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
