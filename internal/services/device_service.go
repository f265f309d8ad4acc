package services

import (
	"errors"
	"time"

	"alertnet_backend/internal/logger"
	"alertnet_backend/internal/models"
	"alertnet_backend/internal/repositories"
	"alertnet_backend/pkg/apperrors"
)

const StaleDeviceCutoffDays = 30

type DeviceService interface {
	// Register upserts on (user, token): a known pair refreshes the
	// record in place, anything else creates one.
	Register(userID, token string, kind models.DeviceKind, name string) (*models.Device, error)

	// Unregister is idempotent; removing an unknown token is a no-op.
	Unregister(userID, token string) error

	ListActive(userID string) ([]models.Device, error)
	DeactivateStale(cutoffDays int) (int64, error)
	DeactivateTokens(tokens []string) (int64, error)
}

type DeviceServiceImpl struct {
	devices repositories.DeviceRepository
}

func NewDeviceService(devices repositories.DeviceRepository) DeviceService {
	return &DeviceServiceImpl{devices: devices}
}

func (s *DeviceServiceImpl) Register(userID, token string, kind models.DeviceKind, name string) (*models.Device, error) {
	if !kind.Valid() {
		return nil, apperrors.NewBadRequestError("unknown device kind")
	}

	existing, err := s.devices.FindByUserAndToken(userID, token)
	if err == nil {
		existing.Kind = kind
		if name != "" {
			existing.Name = name
		}
		existing.IsActive = true
		existing.LastUsedAt = time.Now()
		if err := s.devices.Update(existing); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return existing, nil
	}
	if !errors.Is(err, repositories.ErrDeviceNotFound) {
		return nil, apperrors.InternalError(err)
	}

	device := &models.Device{
		UserID:     userID,
		Token:      token,
		Kind:       kind,
		Name:       name,
		IsActive:   true,
		LastUsedAt: time.Now(),
	}
	if err := s.devices.Create(device); err != nil {
		// Tokens are unique system-wide; a clash means the token is
		// already bound to another account.
		return nil, apperrors.ErrConflict(err, "device", "Token already registered")
	}
	return device, nil
}

func (s *DeviceServiceImpl) Unregister(userID, token string) error {
	removed, err := s.devices.DeleteByUserAndToken(userID, token)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if removed > 0 {
		logger.Debug("device unregistered", "user_id", userID)
	}
	return nil
}

func (s *DeviceServiceImpl) ListActive(userID string) ([]models.Device, error) {
	devices, err := s.devices.FindActiveByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return devices, nil
}

func (s *DeviceServiceImpl) DeactivateStale(cutoffDays int) (int64, error) {
	if cutoffDays <= 0 {
		cutoffDays = StaleDeviceCutoffDays
	}
	cutoff := time.Now().AddDate(0, 0, -cutoffDays)
	count, err := s.devices.DeactivateLastUsedBefore(cutoff)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *DeviceServiceImpl) DeactivateTokens(tokens []string) (int64, error) {
	count, err := s.devices.DeactivateTokens(tokens)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}
