package models

import "time"

type AlertCategory struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `gorm:"default:'#007bff'" json:"color"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}

type Alert struct {
	BaseModel
	Title       string        `gorm:"not null" json:"title"`
	Description string        `gorm:"not null" json:"description"`
	CategoryID  string        `gorm:"type:uuid;not null" json:"category_id"`
	Severity    AlertSeverity `gorm:"type:varchar(10);default:'medium';index:idx_alerts_severity_status" json:"severity"`
	Status      AlertStatus   `gorm:"type:varchar(15);default:'active';index:idx_alerts_severity_status" json:"status"`

	// Location
	Latitude    float64 `gorm:"not null;index:idx_alerts_location" json:"latitude"`
	Longitude   float64 `gorm:"not null;index:idx_alerts_location" json:"longitude"`
	Address     string  `json:"address"`
	CommunityID string  `gorm:"type:uuid;not null;index" json:"community_id"`

	CreatedByID string  `gorm:"type:uuid;not null" json:"created_by_id"`
	UpdatedByID *string `gorm:"type:uuid" json:"updated_by_id,omitempty"`

	IncidentAt time.Time  `gorm:"not null" json:"incident_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`

	// Engagement counters, never negative.
	ViewCount uint `gorm:"default:0" json:"view_count"`
	Upvotes   uint `gorm:"default:0" json:"upvotes"`
	Downvotes uint `gorm:"default:0" json:"downvotes"`

	IsPublic   bool `gorm:"default:true" json:"is_public"`
	IsVerified bool `gorm:"default:false" json:"is_verified"`

	// Relations. Votes, comments and media die with the alert.
	Category      *AlertCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Community     *Community     `gorm:"foreignKey:CommunityID" json:"community,omitempty"`
	CreatedBy     *User          `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Votes         []AlertVote    `gorm:"foreignKey:AlertID;constraint:OnDelete:CASCADE" json:"-"`
	Comments      []AlertComment `gorm:"foreignKey:AlertID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Media         []AlertMedia   `gorm:"foreignKey:AlertID;constraint:OnDelete:CASCADE" json:"media,omitempty"`
	Notifications []Notification `gorm:"foreignKey:AlertID;constraint:OnDelete:CASCADE" json:"-"`
}

func (a *Alert) IsCritical() bool {
	return a.Severity == SeverityCritical
}

type AlertMedia struct {
	BaseModel
	AlertID   string    `gorm:"type:uuid;not null;index" json:"alert_id"`
	MediaType MediaType `gorm:"type:varchar(10);not null" json:"media_type"`
	FileURL   string    `gorm:"not null" json:"file_url"`
	Caption   string    `json:"caption"`
}
