package services

import (
	"errors"

	"alertnet_backend/internal/dto"
	"alertnet_backend/internal/logger"
	"alertnet_backend/internal/models"
	"alertnet_backend/internal/repositories"
	"alertnet_backend/pkg/apperrors"
)

type CommunityService interface {
	Create(req dto.CreateCommunityRequest) (*models.Community, error)
	Get(id string) (*models.Community, error)
	List(activeOnly bool) ([]models.Community, error)
	Update(id string, req dto.UpdateCommunityRequest) (*models.Community, error)
	Deactivate(id string) error
	Join(userID, communityID string) error
	Leave(userID, communityID string) error
	MemberCount(communityID string) (int64, error)
}

type CommunityServiceImpl struct {
	communities repositories.CommunityRepository
	users       repositories.UserRepository
}

func NewCommunityService(communities repositories.CommunityRepository, users repositories.UserRepository) CommunityService {
	return &CommunityServiceImpl{communities: communities, users: users}
}

func (s *CommunityServiceImpl) Create(req dto.CreateCommunityRequest) (*models.Community, error) {
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, apperrors.NewBadRequestError("latitude and longitude must be set together")
	}

	community := &models.Community{
		Name:        req.Name,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		RadiusKm:    req.RadiusKm,
		IsActive:    true,
	}
	if err := s.communities.Create(community); err != nil {
		if errors.Is(err, repositories.ErrCommunityExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("community created", "community_id", community.ID, "name", community.Name)
	return community, nil
}

func (s *CommunityServiceImpl) Get(id string) (*models.Community, error) {
	community, err := s.communities.FindByID(id)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return community, nil
}

func (s *CommunityServiceImpl) List(activeOnly bool) ([]models.Community, error) {
	communities, err := s.communities.FindAll(activeOnly)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return communities, nil
}

func (s *CommunityServiceImpl) Update(id string, req dto.UpdateCommunityRequest) (*models.Community, error) {
	community, err := s.communities.FindByID(id)
	if err != nil {
		return nil, s.mapErr(err)
	}

	if req.Description != nil {
		community.Description = *req.Description
	}
	if req.Latitude != nil && req.Longitude != nil {
		community.Latitude = req.Latitude
		community.Longitude = req.Longitude
	} else if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, apperrors.NewBadRequestError("latitude and longitude must be set together")
	}
	if req.RadiusKm != nil {
		community.RadiusKm = req.RadiusKm
	}
	if req.IsActive != nil {
		community.IsActive = *req.IsActive
	}

	if err := s.communities.Update(community); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return community, nil
}

// Deactivate retires a community without breaking its alert history.
func (s *CommunityServiceImpl) Deactivate(id string) error {
	community, err := s.communities.FindByID(id)
	if err != nil {
		return s.mapErr(err)
	}
	community.IsActive = false
	if err := s.communities.Update(community); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CommunityServiceImpl) Join(userID, communityID string) error {
	community, err := s.communities.FindByID(communityID)
	if err != nil {
		return s.mapErr(err)
	}
	if !community.IsActive {
		return apperrors.ErrInvalidOperation("community", "Community is not active")
	}

	member, err := s.users.IsMember(userID, communityID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if member {
		return nil // joining twice is a no-op
	}

	if err := s.users.AddToCommunity(userID, communityID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CommunityServiceImpl) Leave(userID, communityID string) error {
	if _, err := s.communities.FindByID(communityID); err != nil {
		return s.mapErr(err)
	}
	if err := s.users.RemoveFromCommunity(userID, communityID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CommunityServiceImpl) MemberCount(communityID string) (int64, error) {
	count, err := s.users.CountByCommunity(communityID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *CommunityServiceImpl) mapErr(err error) error {
	if errors.Is(err, repositories.ErrCommunityNotFound) {
		return apperrors.ErrNotFound(err)
	}
	return apperrors.InternalError(err)
}
