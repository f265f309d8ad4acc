package services

import (
	"errors"

	"alertnet_backend/internal/dto"
	"alertnet_backend/internal/models"
	"alertnet_backend/internal/repositories"
	"alertnet_backend/pkg/apperrors"
)

type CommentService interface {
	Create(alertID, userID string, req dto.CreateCommentRequest) (*models.AlertComment, error)
	ListByAlert(alertID string) ([]models.AlertComment, error)
	Delete(commentID, actorID string) error
}

type CommentServiceImpl struct {
	comments repositories.CommentRepository
	alerts   repositories.AlertRepository
	users    repositories.UserRepository
}

func NewCommentService(
	comments repositories.CommentRepository,
	alerts repositories.AlertRepository,
	users repositories.UserRepository,
) CommentService {
	return &CommentServiceImpl{comments: comments, alerts: alerts, users: users}
}

func (s *CommentServiceImpl) Create(alertID, userID string, req dto.CreateCommentRequest) (*models.AlertComment, error) {
	if _, err := s.alerts.FindByID(alertID); err != nil {
		if errors.Is(err, repositories.ErrAlertNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.ParentID != nil {
		parent, err := s.comments.FindByID(*req.ParentID)
		if err != nil {
			if errors.Is(err, repositories.ErrCommentNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
		if parent.AlertID != alertID {
			return nil, apperrors.ErrInvalidOperation("comment", "Parent comment belongs to another alert")
		}
	}

	comment := &models.AlertComment{
		AlertID:  alertID,
		UserID:   userID,
		Content:  req.Content,
		ParentID: req.ParentID,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return comment, nil
}

func (s *CommentServiceImpl) ListByAlert(alertID string) ([]models.AlertComment, error) {
	comments, err := s.comments.FindByAlert(alertID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return comments, nil
}

func (s *CommentServiceImpl) Delete(commentID, actorID string) error {
	comment, err := s.comments.FindByID(commentID)
	if err != nil {
		if errors.Is(err, repositories.ErrCommentNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	actor, err := s.users.FindByID(actorID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if !actor.IsModerator() && comment.UserID != actorID {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.comments.SoftDelete(commentID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
