package dbmysql

import (
	"time"
)

type Post struct {
	PostID    uint64    `gorm:"primaryKey;column:post_id;autoIncrement" json:"post_id"`
	UserID    uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	User     *User     `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Comments []Comment `gorm:"foreignKey:PostID;references:PostID" json:"comments,omitempty"`
	Likes    []Like    `gorm:"foreignKey:PostID;references:PostID" json:"likes,omitempty"`
}

// LikedBy reports whether the given user appears among the preloaded likes.
func (p *Post) LikedBy(userID uint64) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}
