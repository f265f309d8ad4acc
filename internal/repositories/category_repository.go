package repositories

import (
	"errors"

	"alertnet_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("alert category not found")

type CategoryRepository interface {
	Create(category *models.AlertCategory) error
	FindByID(id string) (*models.AlertCategory, error)
	FindAll(activeOnly bool) ([]models.AlertCategory, error)
	Update(category *models.AlertCategory) error
	Delete(id string) error
}

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) Create(category *models.AlertCategory) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepositoryImpl) FindByID(id string) (*models.AlertCategory, error) {
	var category models.AlertCategory
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) FindAll(activeOnly bool) ([]models.AlertCategory, error) {
	query := r.db.Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var categories []models.AlertCategory
	err := query.Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) Update(category *models.AlertCategory) error {
	return r.db.Save(category).Error
}

func (r *CategoryRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.AlertCategory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
