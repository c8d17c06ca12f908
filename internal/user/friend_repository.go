package user

import (
	"context"

	"gorm.io/gorm"

	"socialnet/internal/dbmysql"
)

type FriendRepository interface {
	CreateFriendship(ctx context.Context, friendship *dbmysql.Friendship) error
	GetFriendshipByID(ctx context.Context, id uint64) (*dbmysql.Friendship, error)
	GetFriendshipByPair(ctx context.Context, a, b uint64) (*dbmysql.Friendship, error)
	UpdateFriendship(ctx context.Context, friendship *dbmysql.Friendship) error
	ListFriends(ctx context.Context, userID uint64) ([]*dbmysql.User, error)
	ListPendingRequests(ctx context.Context, userID uint64) ([]*dbmysql.Friendship, error)
	CountFriends(ctx context.Context, userID uint64) (int64, error)
}

type friendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) CreateFriendship(ctx context.Context, friendship *dbmysql.Friendship) error {
	return r.db.WithContext(ctx).Create(friendship).Error
}

func (r *friendRepository) GetFriendshipByID(ctx context.Context, id uint64) (*dbmysql.Friendship, error) {
	var friendship dbmysql.Friendship
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&friendship).Error
	if err != nil {
		return nil, err
	}
	return &friendship, nil
}

// GetFriendshipByPair looks up the canonical row for an unordered pair.
// Argument order does not matter.
func (r *friendRepository) GetFriendshipByPair(ctx context.Context, a, b uint64) (*dbmysql.Friendship, error) {
	u1, u2 := dbmysql.NormalizePair(a, b)
	var friendship dbmysql.Friendship
	err := r.db.WithContext(ctx).Where("user1_id = ? AND user2_id = ?", u1, u2).First(&friendship).Error
	if err != nil {
		return nil, err
	}
	return &friendship, nil
}

func (r *friendRepository) UpdateFriendship(ctx context.Context, friendship *dbmysql.Friendship) error {
	return r.db.WithContext(ctx).Save(friendship).Error
}

// ListFriends returns the users connected to userID through an accepted row,
// whichever side of the pair they occupy.
func (r *friendRepository) ListFriends(ctx context.Context, userID uint64) ([]*dbmysql.User, error) {
	var friendships []dbmysql.Friendship
	err := r.db.WithContext(ctx).
		Where("(user1_id = ? OR user2_id = ?) AND status = ?", userID, userID, dbmysql.FriendshipAccepted).
		Find(&friendships).Error
	if err != nil {
		return nil, err
	}

	var friendIDs []uint64
	for _, f := range friendships {
		friendIDs = append(friendIDs, f.OtherUser(userID))
	}

	if len(friendIDs) == 0 {
		return []*dbmysql.User{}, nil
	}

	var friends []*dbmysql.User
	err = r.db.WithContext(ctx).
		Where("user_id IN ?", friendIDs).
		Order("username ASC").
		Find(&friends).Error

	return friends, err
}

func (r *friendRepository) ListPendingRequests(ctx context.Context, userID uint64) ([]*dbmysql.Friendship, error) {
	var requests []*dbmysql.Friendship
	err := r.db.WithContext(ctx).
		Where("(user1_id = ? OR user2_id = ?) AND status = ?", userID, userID, dbmysql.FriendshipPending).
		Preload("User1").
		Preload("User2").
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *friendRepository) CountFriends(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Friendship{}).
		Where("(user1_id = ? OR user2_id = ?) AND status = ?", userID, userID, dbmysql.FriendshipAccepted).
		Count(&count).Error
	return count, err
}
