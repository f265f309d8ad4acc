package services

import (
	"errors"

	"alertnet_backend/internal/dto"
	"alertnet_backend/internal/models"
	"alertnet_backend/internal/repositories"
	validatorx "alertnet_backend/internal/validator"
	"alertnet_backend/pkg/apperrors"
)

type UserService interface {
	UpdateProfile(userID string, req dto.UpdateProfileRequest) (*models.User, error)
	UpdatePreferences(userID string, req dto.UpdatePreferencesRequest) (*models.User, error)
}

type UserServiceImpl struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) UserService {
	return &UserServiceImpl{users: users}
}

func (s *UserServiceImpl) UpdateProfile(userID string, req dto.UpdateProfileRequest) (*models.User, error) {
	// Location is all-or-nothing; a lone coordinate is meaningless.
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, apperrors.NewBadRequestError("latitude and longitude must be set together")
	}

	fields := map[string]interface{}{}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		fields["phone_number"] = *req.Phone
	}
	if req.Latitude != nil {
		fields["latitude"] = *req.Latitude
		fields["longitude"] = *req.Longitude
	}

	if len(fields) > 0 {
		if err := s.users.UpdateFields(userID, fields); err != nil {
			return nil, s.mapErr(err)
		}
	}
	return s.fetch(userID)
}

func (s *UserServiceImpl) UpdatePreferences(userID string, req dto.UpdatePreferencesRequest) (*models.User, error) {
	fields := map[string]interface{}{}
	if req.EmailNotifications != nil {
		fields["email_notifications"] = *req.EmailNotifications
	}
	if req.PushNotifications != nil {
		fields["push_notifications"] = *req.PushNotifications
	}
	if req.NotificationRadiusKm != nil {
		r := *req.NotificationRadiusKm
		if r < validatorx.MinNotificationRadiusKm || r > validatorx.MaxNotificationRadiusKm {
			return nil, apperrors.NewBadRequestError("notification radius out of range")
		}
		fields["notification_radius_km"] = r
	}

	if len(fields) > 0 {
		if err := s.users.UpdateFields(userID, fields); err != nil {
			return nil, s.mapErr(err)
		}
	}
	return s.fetch(userID)
}

func (s *UserServiceImpl) fetch(userID string) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return user, nil
}

func (s *UserServiceImpl) mapErr(err error) error {
	if errors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.ErrNotFound(err)
	}
	return apperrors.InternalError(err)
}
