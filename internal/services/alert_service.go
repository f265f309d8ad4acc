package services

import (
	"context"
	"errors"
	"time"

	"alertnet_backend/internal/cache"
	"alertnet_backend/internal/dto"
	"alertnet_backend/internal/geo"
	"alertnet_backend/internal/logger"
	"alertnet_backend/internal/models"
	"alertnet_backend/internal/repositories"
	"alertnet_backend/pkg/apperrors"
)

const DefaultNearbyRadiusKm = 10.0

type AlertService interface {
	CreateAlert(userID string, req dto.CreateAlertRequest) (*models.Alert, int, error)
	GetAlert(ctx context.Context, id, viewerID string) (*models.Alert, error)
	ListAlerts(criteria repositories.AlertCriteria) ([]models.Alert, int64, error)
	NearbyAlerts(q dto.NearbyQuery) ([]dto.AlertWithDistance, error)
	UpdateStatus(alertID, actorID string, status models.AlertStatus) (*models.Alert, error)
	DeleteAlert(alertID, actorID string) error
	Vote(alertID, userID string, voteType models.VoteType) (*models.Alert, error)
}

type AlertServiceImpl struct {
	alerts      repositories.AlertRepository
	votes       repositories.VoteRepository
	users       repositories.UserRepository
	communities repositories.CommunityRepository
	categories  repositories.CategoryRepository
	dispatcher  DispatchService
	views       cache.ViewTracker
}

func NewAlertService(
	alerts repositories.AlertRepository,
	votes repositories.VoteRepository,
	users repositories.UserRepository,
	communities repositories.CommunityRepository,
	categories repositories.CategoryRepository,
	dispatcher DispatchService,
	views cache.ViewTracker,
) AlertService {
	return &AlertServiceImpl{
		alerts:      alerts,
		votes:       votes,
		users:       users,
		communities: communities,
		categories:  categories,
		dispatcher:  dispatcher,
		views:       views,
	}
}

// CreateAlert persists the alert and fans notifications out to the
// resolved audience. The returned count is how many deliveries
// succeeded, for user-facing feedback.
func (s *AlertServiceImpl) CreateAlert(userID string, req dto.CreateAlertRequest) (*models.Alert, int, error) {
	severity := models.AlertSeverity(req.Severity)
	if !severity.Valid() {
		return nil, 0, apperrors.NewBadRequestError("unknown severity")
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, 0, s.mapUserErr(err)
	}

	if _, err := s.categories.FindByID(req.CategoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, 0, apperrors.ErrNotFound(err)
		}
		return nil, 0, apperrors.InternalError(err)
	}

	community, err := s.communities.FindByID(req.CommunityID)
	if err != nil {
		if errors.Is(err, repositories.ErrCommunityNotFound) {
			return nil, 0, apperrors.ErrNotFound(err)
		}
		return nil, 0, apperrors.InternalError(err)
	}
	if !community.IsActive {
		return nil, 0, apperrors.ErrInvalidOperation("alert", "Community is not active")
	}

	if !user.IsModerator() {
		member, err := s.users.IsMember(userID, community.ID)
		if err != nil {
			return nil, 0, apperrors.InternalError(err)
		}
		if !member {
			return nil, 0, apperrors.NewForbiddenError("Only community members can post alerts")
		}
	}

	incidentAt := time.Now()
	if req.IncidentAt != nil {
		incidentAt = *req.IncidentAt
	}
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	alert := &models.Alert{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		CommunityID: req.CommunityID,
		Severity:    severity,
		Status:      models.AlertStatusActive,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
		CreatedByID: userID,
		IncidentAt:  incidentAt,
		IsPublic:    isPublic,
	}
	if err := s.alerts.Create(alert); err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	// Reload with relations so rendered notifications can name the
	// category and community.
	created, err := s.alerts.FindByID(alert.ID)
	if err != nil {
		logger.Error("reload after create failed", "alert_id", alert.ID, "error", err)
		created = alert
	}

	notified := s.dispatcher.DispatchAlert(created)
	return created, notified, nil
}

func (s *AlertServiceImpl) GetAlert(ctx context.Context, id, viewerID string) (*models.Alert, error) {
	alert, err := s.alerts.FindByID(id)
	if err != nil {
		return nil, s.mapAlertErr(err)
	}

	if viewerID != "" && s.views.FirstView(ctx, id, viewerID) {
		if err := s.alerts.IncrementViewCount(id); err != nil {
			logger.Warn("view count increment failed", "alert_id", id, "error", err)
		} else {
			alert.ViewCount++
		}
	}
	return alert, nil
}

func (s *AlertServiceImpl) ListAlerts(criteria repositories.AlertCriteria) ([]models.Alert, int64, error) {
	if criteria.Page < 1 {
		criteria.Page = 1
	}
	if criteria.PageSize < 1 || criteria.PageSize > 100 {
		criteria.PageSize = 20
	}
	alerts, total, err := s.alerts.Search(criteria)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return alerts, total, nil
}

// NearbyAlerts prefilters with a bounding box in SQL, then applies the
// exact great-circle check and sorts by distance.
func (s *AlertServiceImpl) NearbyAlerts(q dto.NearbyQuery) ([]dto.AlertWithDistance, error) {
	radius := q.RadiusKm
	if radius <= 0 {
		radius = DefaultNearbyRadiusKm
	}

	minLat, maxLat, minLng, maxLng := geo.BoundingBox(q.Latitude, q.Longitude, radius)
	candidates, err := s.alerts.FindInBoundingBox(minLat, maxLat, minLng, maxLng)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	hits := make([]dto.AlertWithDistance, 0, len(candidates))
	for _, a := range candidates {
		d := geo.Distance(q.Latitude, q.Longitude, a.Latitude, a.Longitude)
		if d <= radius {
			hits = append(hits, dto.AlertWithDistance{Alert: a, DistanceKm: d})
		}
	}

	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].DistanceKm < hits[j-1].DistanceKm; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
	return hits, nil
}

func (s *AlertServiceImpl) UpdateStatus(alertID, actorID string, status models.AlertStatus) (*models.Alert, error) {
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus("alert", "Unknown alert status")
	}

	alert, err := s.alerts.FindByID(alertID)
	if err != nil {
		return nil, s.mapAlertErr(err)
	}

	actor, err := s.users.FindByID(actorID)
	if err != nil {
		return nil, s.mapUserErr(err)
	}
	if !actor.IsModerator() && alert.CreatedByID != actorID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	var resolvedAt *time.Time
	if status == models.AlertStatusResolved || status == models.AlertStatusFalseAlarm {
		now := time.Now()
		resolvedAt = &now
	}

	if err := s.alerts.UpdateStatus(alertID, status, actorID, resolvedAt); err != nil {
		return nil, s.mapAlertErr(err)
	}
	return s.alerts.FindByID(alertID)
}

func (s *AlertServiceImpl) DeleteAlert(alertID, actorID string) error {
	alert, err := s.alerts.FindByID(alertID)
	if err != nil {
		return s.mapAlertErr(err)
	}

	actor, err := s.users.FindByID(actorID)
	if err != nil {
		return s.mapUserErr(err)
	}
	if !actor.IsModerator() && alert.CreatedByID != actorID {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.alerts.Delete(alertID); err != nil {
		return s.mapAlertErr(err)
	}
	return nil
}

// Vote toggles: repeating the same vote removes it, the opposite vote
// flips it. Counters on the alert are recomputed from the vote rows,
// never incremented blindly.
func (s *AlertServiceImpl) Vote(alertID, userID string, voteType models.VoteType) (*models.Alert, error) {
	if !voteType.Valid() {
		return nil, apperrors.NewBadRequestError("unknown vote type")
	}

	if _, err := s.alerts.FindByID(alertID); err != nil {
		return nil, s.mapAlertErr(err)
	}

	existing, err := s.votes.Find(alertID, userID)
	switch {
	case err == nil && existing.VoteType == voteType:
		if err := s.votes.Delete(existing.ID); err != nil {
			return nil, apperrors.InternalError(err)
		}
	case err == nil:
		existing.VoteType = voteType
		if err := s.votes.Update(existing); err != nil {
			return nil, apperrors.InternalError(err)
		}
	case errors.Is(err, repositories.ErrVoteNotFound):
		vote := &models.AlertVote{AlertID: alertID, UserID: userID, VoteType: voteType}
		if err := s.votes.Create(vote); err != nil {
			return nil, apperrors.InternalError(err)
		}
	default:
		return nil, apperrors.InternalError(err)
	}

	upvotes, downvotes, err := s.votes.CountByType(alertID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.alerts.SetVoteCounts(alertID, upvotes, downvotes); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.alerts.FindByID(alertID)
}

func (s *AlertServiceImpl) mapAlertErr(err error) error {
	if errors.Is(err, repositories.ErrAlertNotFound) {
		return apperrors.ErrNotFound(err)
	}
	return apperrors.InternalError(err)
}

func (s *AlertServiceImpl) mapUserErr(err error) error {
	if errors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.ErrNotFound(err)
	}
	return apperrors.InternalError(err)
}
