package dto

import "time"

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Phone     string `json:"phone_number" validate:"max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	FirstName *string  `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string  `json:"last_name" validate:"omitempty,max=100"`
	Phone     *string  `json:"phone_number" validate:"omitempty,max=20"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}

type UpdatePreferencesRequest struct {
	EmailNotifications   *bool    `json:"email_notifications"`
	PushNotifications    *bool    `json:"push_notifications"`
	NotificationRadiusKm *float64 `json:"notification_radius_km" validate:"omitempty,notification-radius"`
}

type CreateAlertRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"required"`
	CategoryID  string     `json:"category_id" validate:"required,uuid"`
	CommunityID string     `json:"community_id" validate:"required,uuid"`
	Severity    string     `json:"severity" validate:"required,is-severity"`
	Latitude    float64    `json:"latitude" validate:"required,latitude"`
	Longitude   float64    `json:"longitude" validate:"required,longitude"`
	Address     string     `json:"address" validate:"max=255"`
	IncidentAt  *time.Time `json:"incident_at"`
	IsPublic    *bool      `json:"is_public"`
}

type UpdateAlertStatusRequest struct {
	Status string `json:"status" validate:"required,is-alert-status"`
}

type VoteRequest struct {
	VoteType string `json:"vote_type" validate:"required,is-vote-type"`
}

type NearbyQuery struct {
	Latitude  float64 `form:"latitude" validate:"required,latitude"`
	Longitude float64 `form:"longitude" validate:"required,longitude"`
	RadiusKm  float64 `form:"radius_km" validate:"omitempty,gt=0,lte=50"`
}

type CreateCommentRequest struct {
	Content  string  `json:"content" validate:"required,max=2000"`
	ParentID *string `json:"parent_id" validate:"omitempty,uuid"`
}

type RegisterDeviceRequest struct {
	Token string `json:"token" validate:"required"`
	Kind  string `json:"kind" validate:"required,is-device-kind"`
	Name  string `json:"name" validate:"max=100"`
}

type UnregisterDeviceRequest struct {
	Token string `json:"token" validate:"required"`
}

type CreateCommunityRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,longitude"`
	RadiusKm    *float64 `json:"radius_km" validate:"omitempty,gt=0"`
}

type UpdateCommunityRequest struct {
	Description *string  `json:"description"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,longitude"`
	RadiusKm    *float64 `json:"radius_km" validate:"omitempty,gt=0"`
	IsActive    *bool    `json:"is_active"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	Icon        string `json:"icon" validate:"max=50"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
}
