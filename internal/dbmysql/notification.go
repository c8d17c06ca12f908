package dbmysql

import (
	"time"
)

// Notification is a plain user-directed message row. Nothing in this
// codebase generates them from likes, comments or friend requests; they are
// only listed and marked read.
type Notification struct {
	NotificationID uint64    `gorm:"primaryKey;column:notification_id;autoIncrement" json:"notification_id"`
	UserID         uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	Message        string    `gorm:"column:message;size:255;not null" json:"message"`
	Read           bool      `gorm:"column:read;not null;default:false" json:"read"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}
