package dbmysql

import (
	"time"
)

// Like rows exist iff the user currently likes the post. There is no
// boolean flag; toggling creates or deletes the row.
type Like struct {
	ID        uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_like_user_post,unique" json:"user_id"`
	PostID    uint64    `gorm:"column:post_id;not null;index:idx_like_user_post,unique" json:"post_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Post *Post `gorm:"foreignKey:PostID;references:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

type Comment struct {
	CommentID uint64    `gorm:"primaryKey;column:comment_id;autoIncrement" json:"comment_id"`
	UserID    uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	PostID    uint64    `gorm:"column:post_id;not null;index" json:"post_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Post *Post `gorm:"foreignKey:PostID;references:PostID;constraint:OnDelete:CASCADE" json:"-"`
}
