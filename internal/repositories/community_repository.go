package repositories

import (
	"errors"

	"alertnet_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCommunityNotFound = errors.New("community not found")
	ErrCommunityExists   = errors.New("community name already taken")
)

type CommunityRepository interface {
	Create(community *models.Community) error
	FindByID(id string) (*models.Community, error)
	FindByName(name string) (*models.Community, error)
	FindAll(activeOnly bool) ([]models.Community, error)
	Update(community *models.Community) error
	Delete(id string) error
}

type CommunityRepositoryImpl struct {
	db *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &CommunityRepositoryImpl{db: db}
}

func (r *CommunityRepositoryImpl) Create(community *models.Community) error {
	var count int64
	if err := r.db.Model(&models.Community{}).Where("name = ?", community.Name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrCommunityExists
	}
	return r.db.Create(community).Error
}

func (r *CommunityRepositoryImpl) FindByID(id string) (*models.Community, error) {
	var community models.Community
	err := r.db.First(&community, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommunityNotFound
		}
		return nil, err
	}
	return &community, nil
}

func (r *CommunityRepositoryImpl) FindByName(name string) (*models.Community, error) {
	var community models.Community
	err := r.db.First(&community, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommunityNotFound
		}
		return nil, err
	}
	return &community, nil
}

func (r *CommunityRepositoryImpl) FindAll(activeOnly bool) ([]models.Community, error) {
	query := r.db.Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var communities []models.Community
	err := query.Find(&communities).Error
	return communities, err
}

func (r *CommunityRepositoryImpl) Update(community *models.Community) error {
	return r.db.Save(community).Error
}

func (r *CommunityRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Community{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommunityNotFound
	}
	return nil
}
