package user

import (
	"context"

	"gorm.io/gorm"

	"socialnet/internal/dbmysql"
)

type UserRepository interface {
	CreateUserWithProfile(ctx context.Context, user *dbmysql.User) error
	GetUserByID(ctx context.Context, userID uint64) (*dbmysql.User, error)
	GetUserByUsername(ctx context.Context, username string) (*dbmysql.User, error)
	UpdateUser(ctx context.Context, user *dbmysql.User) error
	CheckUserExists(ctx context.Context, username string) (bool, error)

	CountLikesGiven(ctx context.Context, userID uint64) (int64, error)
	CountCommentsMade(ctx context.Context, userID uint64) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUserWithProfile inserts the user and its empty profile in a single
// transaction, so an account never exists without one.
func (r *userRepository) CreateUserWithProfile(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile := &dbmysql.Profile{UserID: user.UserID}
		return tx.Create(profile).Error
	})
}

func (r *userRepository) GetUserByID(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Preload("Profile").Where("user_id = ?", userID).First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Preload("Profile").Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) CheckUserExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbmysql.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) CountLikesGiven(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbmysql.Like{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *userRepository) CountCommentsMade(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbmysql.Comment{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
