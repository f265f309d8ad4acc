package models

// AlertVote holds one vote per (alert, user) pair; the composite unique
// index is what enforces the single-vote invariant.
type AlertVote struct {
	BaseModel
	AlertID  string   `gorm:"type:uuid;not null;uniqueIndex:idx_alert_votes_alert_user" json:"alert_id"`
	UserID   string   `gorm:"type:uuid;not null;uniqueIndex:idx_alert_votes_alert_user" json:"user_id"`
	VoteType VoteType `gorm:"type:varchar(4);not null" json:"vote_type"`
}
