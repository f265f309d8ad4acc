package repositories

import (
	"errors"
	"time"

	"alertnet_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAlertNotFound = errors.New("alert not found")

// AlertCriteria filters the alert listing.
type AlertCriteria struct {
	CommunityID string               `form:"community_id"`
	CategoryID  string               `form:"category_id"`
	Severity    models.AlertSeverity `form:"severity"`
	Status      models.AlertStatus   `form:"status"`
	PublicOnly  bool                 `form:"-"`
	Page        int                  `form:"page"`
	PageSize    int                  `form:"page_size"`
}

type AlertRepository interface {
	Create(alert *models.Alert) error
	FindByID(id string) (*models.Alert, error)
	Search(criteria AlertCriteria) ([]models.Alert, int64, error)

	// FindInBoundingBox returns public active alerts inside the lat/lng
	// envelope. Callers refine with the exact distance check.
	FindInBoundingBox(minLat, maxLat, minLng, maxLng float64) ([]models.Alert, error)

	Update(alert *models.Alert) error
	UpdateStatus(id string, status models.AlertStatus, updatedBy string, resolvedAt *time.Time) error
	Delete(id string) error

	IncrementViewCount(id string) error
	SetVoteCounts(id string, upvotes, downvotes int64) error
}

type AlertRepositoryImpl struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &AlertRepositoryImpl{db: db}
}

func (r *AlertRepositoryImpl) Create(alert *models.Alert) error {
	return r.db.Create(alert).Error
}

func (r *AlertRepositoryImpl) FindByID(id string) (*models.Alert, error) {
	var alert models.Alert
	err := r.db.
		Preload("Category").
		Preload("Community").
		Preload("CreatedBy").
		First(&alert, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, err
	}
	return &alert, nil
}

func (r *AlertRepositoryImpl) Search(criteria AlertCriteria) ([]models.Alert, int64, error) {
	query := r.db.Model(&models.Alert{})

	if criteria.CommunityID != "" {
		query = query.Where("community_id = ?", criteria.CommunityID)
	}
	if criteria.CategoryID != "" {
		query = query.Where("category_id = ?", criteria.CategoryID)
	}
	if criteria.Severity != "" {
		query = query.Where("severity = ?", criteria.Severity)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.PublicOnly {
		query = query.Where("is_public = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	var alerts []models.Alert
	err := query.
		Preload("Category").
		Preload("Community").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&alerts).Error

	return alerts, total, err
}

func (r *AlertRepositoryImpl) FindInBoundingBox(minLat, maxLat, minLng, maxLng float64) ([]models.Alert, error) {
	var alerts []models.Alert
	err := r.db.
		Where("is_public = ? AND status = ?", true, models.AlertStatusActive).
		Where("latitude BETWEEN ? AND ?", minLat, maxLat).
		Where("longitude BETWEEN ? AND ?", minLng, maxLng).
		Preload("Category").
		Preload("Community").
		Order("created_at DESC").
		Find(&alerts).Error
	return alerts, err
}

func (r *AlertRepositoryImpl) Update(alert *models.Alert) error {
	return r.db.Save(alert).Error
}

func (r *AlertRepositoryImpl) UpdateStatus(id string, status models.AlertStatus, updatedBy string, resolvedAt *time.Time) error {
	fields := map[string]interface{}{
		"status":        status,
		"updated_by_id": updatedBy,
	}
	if resolvedAt != nil {
		fields["resolved_at"] = *resolvedAt
	}

	result := r.db.Model(&models.Alert{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlertNotFound
	}
	return nil
}

func (r *AlertRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Alert{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlertNotFound
	}
	return nil
}

func (r *AlertRepositoryImpl) IncrementViewCount(id string) error {
	return r.db.Model(&models.Alert{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *AlertRepositoryImpl) SetVoteCounts(id string, upvotes, downvotes int64) error {
	return r.db.Model(&models.Alert{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"upvotes":   upvotes,
			"downvotes": downvotes,
		}).Error
}
