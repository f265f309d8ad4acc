package dto

import "alertnet_backend/internal/models"

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type AlertCreatedResponse struct {
	Alert         *models.Alert `json:"alert"`
	NotifiedCount int           `json:"notified_count"`
}

// AlertWithDistance decorates a nearby-search hit with the exact
// distance from the query point.
type AlertWithDistance struct {
	models.Alert
	DistanceKm float64 `json:"distance_km"`
}

type PaginatedResponse struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

func NewPaginatedResponse(items interface{}, total int64, page, pageSize int) PaginatedResponse {
	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}
	return PaginatedResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

type NotificationStats struct {
	Sent      int64 `json:"sent"`
	Failed    int64 `json:"failed"`
	Pending   int64 `json:"pending"`
	Delivered int64 `json:"delivered"`
}
