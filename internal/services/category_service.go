package services

import (
	"errors"

	"alertnet_backend/internal/dto"
	"alertnet_backend/internal/models"
	"alertnet_backend/internal/repositories"
	"alertnet_backend/pkg/apperrors"
)

type CategoryService interface {
	Create(req dto.CreateCategoryRequest) (*models.AlertCategory, error)
	List(activeOnly bool) ([]models.AlertCategory, error)
	Get(id string) (*models.AlertCategory, error)
	Deactivate(id string) error
}

type CategoryServiceImpl struct {
	categories repositories.CategoryRepository
}

func NewCategoryService(categories repositories.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{categories: categories}
}

func (s *CategoryServiceImpl) Create(req dto.CreateCategoryRequest) (*models.AlertCategory, error) {
	category := &models.AlertCategory{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		IsActive:    true,
	}
	if req.Color != "" {
		category.Color = req.Color
	}
	if err := s.categories.Create(category); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) List(activeOnly bool) ([]models.AlertCategory, error) {
	categories, err := s.categories.FindAll(activeOnly)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}

func (s *CategoryServiceImpl) Get(id string) (*models.AlertCategory, error) {
	category, err := s.categories.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

// Deactivate hides the category from pickers without orphaning the
// alerts already filed under it.
func (s *CategoryServiceImpl) Deactivate(id string) error {
	category, err := s.Get(id)
	if err != nil {
		return err
	}
	category.IsActive = false
	if err := s.categories.Update(category); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
