package repositories

import (
	"errors"

	"alertnet_backend/internal/models"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateFields(id string, fields map[string]interface{}) error

	// FindCommunityRecipients returns active community members that have
	// the given channel enabled. This is the candidate set both resolver
	// policies start from.
	FindCommunityRecipients(communityID string, channel models.NotificationChannel) ([]models.User, error)

	AddToCommunity(userID, communityID string) error
	RemoveFromCommunity(userID, communityID string) error
	IsMember(userID, communityID string) (bool, error)
	CountByCommunity(communityID string) (int64, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepositoryImpl) UpdateFields(id string, fields map[string]interface{}) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindCommunityRecipients(communityID string, channel models.NotificationChannel) ([]models.User, error) {
	query := r.db.
		Joins("JOIN community_members cm ON cm.user_id = users.id").
		Where("cm.community_id = ?", communityID).
		Where("users.is_active = ?", true)

	switch channel {
	case models.ChannelEmail:
		query = query.Where("users.email_notifications = ?", true)
	case models.ChannelPush:
		query = query.Where("users.push_notifications = ?", true)
	}

	var users []models.User
	err := query.Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) AddToCommunity(userID, communityID string) error {
	user := models.User{BaseModel: models.BaseModel{ID: userID}}
	community := models.Community{BaseModel: models.BaseModel{ID: communityID}}
	return r.db.Model(&user).Association("Communities").Append(&community)
}

func (r *UserRepositoryImpl) RemoveFromCommunity(userID, communityID string) error {
	user := models.User{BaseModel: models.BaseModel{ID: userID}}
	community := models.Community{BaseModel: models.BaseModel{ID: communityID}}
	return r.db.Model(&user).Association("Communities").Delete(&community)
}

func (r *UserRepositoryImpl) IsMember(userID, communityID string) (bool, error) {
	var count int64
	err := r.db.Table("community_members").
		Where("user_id = ? AND community_id = ?", userID, communityID).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepositoryImpl) CountByCommunity(communityID string) (int64, error) {
	var count int64
	err := r.db.Table("community_members").
		Where("community_id = ?", communityID).
		Count(&count).Error
	return count, err
}
