package feed

import (
	"context"

	"gorm.io/gorm"

	"socialnet/internal/dbmysql"
)

type EngagementRepository interface {
	GetLike(ctx context.Context, userID, postID uint64) (*dbmysql.Like, error)
	CreateLike(ctx context.Context, like *dbmysql.Like) error
	DeleteLike(ctx context.Context, userID, postID uint64) error

	CreateComment(ctx context.Context, comment *dbmysql.Comment) error
	GetCommentByID(ctx context.Context, id uint64) (*dbmysql.Comment, error)
	DeleteComment(ctx context.Context, id uint64) error
}

type engagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) GetLike(ctx context.Context, userID, postID uint64) (*dbmysql.Like, error) {
	var like dbmysql.Like
	err := r.db.WithContext(ctx).Where("user_id = ? AND post_id = ?", userID, postID).First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *engagementRepository) CreateLike(ctx context.Context, like *dbmysql.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

// DeleteLike removes by pair rather than primary key so concurrent toggles
// cannot double-delete through a stale id.
func (r *engagementRepository) DeleteLike(ctx context.Context, userID, postID uint64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&dbmysql.Like{}).Error
}

func (r *engagementRepository) CreateComment(ctx context.Context, comment *dbmysql.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *engagementRepository) GetCommentByID(ctx context.Context, id uint64) (*dbmysql.Comment, error) {
	var comment dbmysql.Comment
	err := r.db.WithContext(ctx).Where("comment_id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *engagementRepository) DeleteComment(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&dbmysql.Comment{}, "comment_id = ?", id).Error
}
