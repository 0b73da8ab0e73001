package notify

import "time"

const (
	TargetAll       = "all"
	TargetWriters   = "writers"
	TargetVocalists = "vocalists"
	TargetSpecific  = "specific"
)

type Notification struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Title      string `gorm:"not null" json:"title"`
	Message    string `gorm:"type:text;not null" json:"message"`
	TargetType string `gorm:"type:varchar(16);not null" json:"target_type"`

	// Comma-joined user ids for specific targeting; empty otherwise.
	SpecificUsers string `gorm:"type:text" json:"specific_users,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type NotificationRead struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	NotificationID uint `gorm:"not null;uniqueIndex:idx_notification_reads,priority:1" json:"notification_id"`
	UserID         uint `gorm:"not null;uniqueIndex:idx_notification_reads,priority:2" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
}
