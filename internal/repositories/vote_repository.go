package repositories

import (
	"errors"

	"alertnet_backend/internal/models"

	"gorm.io/gorm"
)

var ErrVoteNotFound = errors.New("vote not found")

type VoteRepository interface {
	Find(alertID, userID string) (*models.AlertVote, error)
	Create(vote *models.AlertVote) error
	Update(vote *models.AlertVote) error
	Delete(id string) error

	// CountByType recounts both directions for an alert. The counters on
	// the alert row are derived from these.
	CountByType(alertID string) (upvotes, downvotes int64, err error)
}

type VoteRepositoryImpl struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &VoteRepositoryImpl{db: db}
}

func (r *VoteRepositoryImpl) Find(alertID, userID string) (*models.AlertVote, error) {
	var vote models.AlertVote
	err := r.db.First(&vote, "alert_id = ? AND user_id = ?", alertID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVoteNotFound
		}
		return nil, err
	}
	return &vote, nil
}

func (r *VoteRepositoryImpl) Create(vote *models.AlertVote) error {
	return r.db.Create(vote).Error
}

func (r *VoteRepositoryImpl) Update(vote *models.AlertVote) error {
	return r.db.Save(vote).Error
}

func (r *VoteRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.AlertVote{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVoteNotFound
	}
	return nil
}

func (r *VoteRepositoryImpl) CountByType(alertID string) (int64, int64, error) {
	var upvotes, downvotes int64

	if err := r.db.Model(&models.AlertVote{}).
		Where("alert_id = ? AND vote_type = ?", alertID, models.VoteUp).
		Count(&upvotes).Error; err != nil {
		return 0, 0, err
	}

	if err := r.db.Model(&models.AlertVote{}).
		Where("alert_id = ? AND vote_type = ?", alertID, models.VoteDown).
		Count(&downvotes).Error; err != nil {
		return 0, 0, err
	}

	return upvotes, downvotes, nil
}
