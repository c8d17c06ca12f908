package dbmysql

import (
	"time"
)

const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

type User struct {
	UserID       uint64     `gorm:"primaryKey;column:user_id;autoIncrement" json:"user_id"`
	Username     string     `gorm:"column:username;uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string     `gorm:"column:password_hash;size:255;not null" json:"-"`
	Email        string     `gorm:"column:email;size:255" json:"email"`
	DOB          *time.Time `gorm:"column:dob;type:date" json:"dob,omitempty"`
	Gender       string     `gorm:"column:gender;size:1" json:"gender"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Profile *Profile `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

// Profile extends User with presentation fields. Created alongside the user
// at registration, one per account.
type Profile struct {
	ProfileID uint64 `gorm:"primaryKey;column:profile_id;autoIncrement" json:"profile_id"`
	UserID    uint64 `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	Bio       string `gorm:"column:bio;size:160" json:"bio"`
}
