package repositories

import (
	"errors"

	"alertnet_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentRepository interface {
	Create(comment *models.AlertComment) error
	FindByID(id string) (*models.AlertComment, error)
	FindByAlert(alertID string) ([]models.AlertComment, error)
	Update(comment *models.AlertComment) error

	// SoftDelete keeps the row so reply threads stay intact.
	SoftDelete(id string) error
}

type CommentRepositoryImpl struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) Create(comment *models.AlertComment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepositoryImpl) FindByID(id string) (*models.AlertComment, error) {
	var comment models.AlertComment
	err := r.db.Preload("User").First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepositoryImpl) FindByAlert(alertID string) ([]models.AlertComment, error) {
	var comments []models.AlertComment
	err := r.db.
		Preload("User").
		Where("alert_id = ? AND is_deleted = ?", alertID, false).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepositoryImpl) Update(comment *models.AlertComment) error {
	return r.db.Save(comment).Error
}

func (r *CommentRepositoryImpl) SoftDelete(id string) error {
	result := r.db.Model(&models.AlertComment{}).
		Where("id = ?", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}
