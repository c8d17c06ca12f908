package feed

import (
	"context"

	"gorm.io/gorm"

	"socialnet/internal/dbmysql"
)

type PostRepository interface {
	CreatePost(ctx context.Context, post *dbmysql.Post) error
	GetPostByID(ctx context.Context, id uint64) (*dbmysql.Post, error)
	UpdatePost(ctx context.Context, post *dbmysql.Post) error
	DeletePost(ctx context.Context, id uint64) error
	ListGlobal(ctx context.Context, limit int) ([]dbmysql.Post, error)
	ListByAuthors(ctx context.Context, authorIDs []uint64) ([]dbmysql.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// withEngagement eagerly attaches the author, comments (with commenters,
// oldest first) and likes, so rendering a feed page issues no further
// queries.
func withEngagement(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Comments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at ASC")
		}).
		Preload("Comments.User").
		Preload("Likes")
}

func (r *postRepository) CreatePost(ctx context.Context, post *dbmysql.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetPostByID(ctx context.Context, id uint64) (*dbmysql.Post, error) {
	var post dbmysql.Post
	err := withEngagement(r.db.WithContext(ctx)).Where("post_id = ?", id).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) UpdatePost(ctx context.Context, post *dbmysql.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) DeletePost(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&dbmysql.Post{}, "post_id = ?", id).Error
}

func (r *postRepository) ListGlobal(ctx context.Context, limit int) ([]dbmysql.Post, error) {
	var posts []dbmysql.Post
	err := withEngagement(r.db.WithContext(ctx)).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByAuthors(ctx context.Context, authorIDs []uint64) ([]dbmysql.Post, error) {
	if len(authorIDs) == 0 {
		return []dbmysql.Post{}, nil
	}
	var posts []dbmysql.Post
	err := withEngagement(r.db.WithContext(ctx)).
		Where("user_id IN ?", authorIDs).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}
