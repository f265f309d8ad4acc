package models

type AlertComment struct {
	BaseModel
	AlertID   string  `gorm:"type:uuid;not null;index" json:"alert_id"`
	UserID    string  `gorm:"type:uuid;not null" json:"user_id"`
	Content   string  `gorm:"not null" json:"content"`
	ParentID  *string `gorm:"type:uuid" json:"parent_id,omitempty"`
	IsDeleted bool    `gorm:"default:false" json:"is_deleted"`

	User    *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Replies []AlertComment `gorm:"foreignKey:ParentID" json:"replies,omitempty"`
}
