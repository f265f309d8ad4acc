package models

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	PhoneNumber  string   `json:"phone_number"`
	Role         UserRole `gorm:"type:varchar(20);default:'member'" json:"role"`
	IsSuperuser  bool     `gorm:"default:false" json:"is_superuser"`
	IsActive     bool     `gorm:"default:true" json:"is_active"`

	// Optional location; both set or both nil.
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	// Notification preferences. Radius is validated at the boundary (0.1..50 km).
	EmailNotifications   bool    `gorm:"default:true" json:"email_notifications"`
	PushNotifications    bool    `gorm:"default:true" json:"push_notifications"`
	NotificationRadiusKm float64 `gorm:"default:5" json:"notification_radius_km"`

	// Relations
	Communities   []Community    `gorm:"many2many:community_members;" json:"communities,omitempty"`
	Devices       []Device       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"devices,omitempty"`
	Notifications []Notification `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// FullName falls back to the email local part when no name is set.
func (u *User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Email
	}
}

// HasLocation reports whether both coordinates are registered.
func (u *User) HasLocation() bool {
	return u.Latitude != nil && u.Longitude != nil
}

// ChannelEnabled reports the per-channel opt-in flag.
func (u *User) ChannelEnabled(channel NotificationChannel) bool {
	switch channel {
	case ChannelEmail:
		return u.EmailNotifications
	case ChannelPush:
		return u.PushNotifications
	default:
		return false
	}
}

// IsModerator is true for moderators, admins and superusers.
func (u *User) IsModerator() bool {
	return u.Role == UserRoleModerator || u.Role == UserRoleAdmin || u.IsSuperuser
}
