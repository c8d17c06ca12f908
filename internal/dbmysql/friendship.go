package dbmysql

import (
	"time"

	"gorm.io/gorm"
)

// Friendship statuses. declined and blocked are stored values with no
// reachable transition from the exposed operations; they exist for data
// compatibility only.
const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
	FriendshipDeclined = "declined"
	FriendshipBlocked  = "blocked"
)

// Friendship is one canonical row per unordered pair of users. The pair is
// stored ordered (user1_id < user2_id); BeforeSave normalizes, the unique
// index rejects duplicates and the check constraint rejects self-pairs.
type Friendship struct {
	ID        uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	User1ID   uint64    `gorm:"column:user1_id;not null;index:idx_friendship_pair,unique" json:"user1_id"`
	User2ID   uint64    `gorm:"column:user2_id;not null;index:idx_friendship_pair,unique;check:chk_friendship_no_self,user1_id <> user2_id" json:"user2_id"`
	Status    string    `gorm:"column:status;size:10;not null;default:'pending'" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	User1 *User `gorm:"foreignKey:User1ID;references:UserID;constraint:OnDelete:CASCADE" json:"user1,omitempty"`
	User2 *User `gorm:"foreignKey:User2ID;references:UserID;constraint:OnDelete:CASCADE" json:"user2,omitempty"`
}

// BeforeSave keeps the lower user id first so reversed requests map onto the
// same row.
func (f *Friendship) BeforeSave(_ *gorm.DB) error {
	if f.User1ID > f.User2ID {
		f.User1ID, f.User2ID = f.User2ID, f.User1ID
	}
	return nil
}

// Involves reports whether userID is one of the pair.
func (f *Friendship) Involves(userID uint64) bool {
	return f.User1ID == userID || f.User2ID == userID
}

// OtherUser returns the pair member that is not userID.
func (f *Friendship) OtherUser(userID uint64) uint64 {
	if f.User1ID == userID {
		return f.User2ID
	}
	return f.User1ID
}

// NormalizePair orders two user ids canonically (lower first).
func NormalizePair(a, b uint64) (uint64, uint64) {
	if a > b {
		return b, a
	}
	return a, b
}
