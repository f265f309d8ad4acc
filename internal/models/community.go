package models

type Community struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`

	// Geographic boundary approximated by a center point and radius.
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	RadiusKm  *float64 `json:"radius_km"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	// Relations
	Members []User  `gorm:"many2many:community_members;" json:"members,omitempty"`
	Alerts  []Alert `gorm:"foreignKey:CommunityID" json:"alerts,omitempty"`
}
