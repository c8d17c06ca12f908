package feed

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"socialnet/internal/common"
	"socialnet/internal/dbmysql"
	"socialnet/internal/user"
)

// globalFeedLimit caps the fallback feed shown to anonymous viewers and to
// authenticated viewers whose personalized feed came back empty. The
// personalized path itself is unbounded.
const globalFeedLimit = 50

// LikeResult reports which side of the toggle a call landed on.
type LikeResult int

const (
	Liked LikeResult = iota
	Unliked
)

type FeedUsecase interface {
	// ComposeFeed selects the posts for a viewer. viewerID zero means
	// anonymous. The bool is true when a personalized feed came back empty
	// and the global fallback was substituted.
	ComposeFeed(ctx context.Context, viewerID uint64) ([]dbmysql.Post, bool, error)

	CreatePost(ctx context.Context, userID uint64, content string) (*dbmysql.Post, error)
	GetPost(ctx context.Context, postID uint64) (*dbmysql.Post, error)
	EditPost(ctx context.Context, actorID, postID uint64, content string) error
	DeletePost(ctx context.Context, actorID, postID uint64) error
	PostsBy(ctx context.Context, userID uint64) ([]dbmysql.Post, error)

	ToggleLike(ctx context.Context, userID, postID uint64) (LikeResult, error)
	AddComment(ctx context.Context, userID, postID uint64, content string) (*dbmysql.Comment, error)
	DeleteComment(ctx context.Context, actorID, commentID uint64) error
}

type feedService struct {
	postRepo       PostRepository
	engagementRepo EngagementRepository
	friends        user.FriendService
}

func NewFeedService(postRepo PostRepository, engagementRepo EngagementRepository, friends user.FriendService) FeedUsecase {
	return &feedService{
		postRepo:       postRepo,
		engagementRepo: engagementRepo,
		friends:        friends,
	}
}

func (s *feedService) ComposeFeed(ctx context.Context, viewerID uint64) ([]dbmysql.Post, bool, error) {
	if viewerID == 0 {
		posts, err := s.postRepo.ListGlobal(ctx, globalFeedLimit)
		return posts, false, err
	}

	friends, err := s.friends.FriendsOf(ctx, viewerID)
	if err != nil {
		return nil, false, errors.Wrap(err, "loading friend set")
	}

	authorIDs := make([]uint64, 0, len(friends)+1)
	for _, f := range friends {
		authorIDs = append(authorIDs, f.UserID)
	}
	authorIDs = append(authorIDs, viewerID)

	posts, err := s.postRepo.ListByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, false, err
	}

	if len(posts) == 0 {
		posts, err = s.postRepo.ListGlobal(ctx, globalFeedLimit)
		return posts, true, err
	}

	return posts, false, nil
}

func (s *feedService) CreatePost(ctx context.Context, userID uint64, content string) (*dbmysql.Post, error) {
	if err := common.ValidateContent("content", content); err != nil {
		return nil, err
	}

	post := &dbmysql.Post{
		UserID:  userID,
		Content: strings.TrimSpace(content),
	}
	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, errors.Wrap(err, "creating post")
	}
	return post, nil
}

func (s *feedService) GetPost(ctx context.Context, postID uint64) (*dbmysql.Post, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if common.IsRecordNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *feedService) EditPost(ctx context.Context, actorID, postID uint64, content string) error {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != actorID {
		return common.ErrPermission
	}
	if err := common.ValidateContent("content", content); err != nil {
		return err
	}

	post.Content = strings.TrimSpace(content)
	return s.postRepo.UpdatePost(ctx, post)
}

func (s *feedService) DeletePost(ctx context.Context, actorID, postID uint64) error {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != actorID {
		return common.ErrPermission
	}
	return s.postRepo.DeletePost(ctx, postID)
}

func (s *feedService) PostsBy(ctx context.Context, userID uint64) ([]dbmysql.Post, error) {
	return s.postRepo.ListByAuthors(ctx, []uint64{userID})
}

// ToggleLike flips the (user, post) like row: exactly one of create or
// delete happens per call. A duplicate-key race on create counts as the
// create side having already happened.
func (s *feedService) ToggleLike(ctx context.Context, userID, postID uint64) (LikeResult, error) {
	if _, err := s.GetPost(ctx, postID); err != nil {
		return Unliked, err
	}

	_, err := s.engagementRepo.GetLike(ctx, userID, postID)
	if err == nil {
		if err := s.engagementRepo.DeleteLike(ctx, userID, postID); err != nil {
			return Unliked, errors.Wrap(err, "removing like")
		}
		return Unliked, nil
	}
	if !common.IsRecordNotFound(err) {
		return Unliked, errors.Wrap(err, "looking up like")
	}

	like := &dbmysql.Like{UserID: userID, PostID: postID}
	if err := s.engagementRepo.CreateLike(ctx, like); err != nil {
		if common.IsDuplicate(err) {
			return Liked, nil
		}
		return Unliked, errors.Wrap(err, "creating like")
	}
	return Liked, nil
}

func (s *feedService) AddComment(ctx context.Context, userID, postID uint64, content string) (*dbmysql.Comment, error) {
	if _, err := s.GetPost(ctx, postID); err != nil {
		return nil, err
	}
	if err := common.ValidateContent("comment", content); err != nil {
		return nil, err
	}

	comment := &dbmysql.Comment{
		UserID:  userID,
		PostID:  postID,
		Content: strings.TrimSpace(content),
	}
	if err := s.engagementRepo.CreateComment(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "creating comment")
	}
	return comment, nil
}

// DeleteComment is allowed for the comment's author and for the owner of the
// post it sits on.
func (s *feedService) DeleteComment(ctx context.Context, actorID, commentID uint64) error {
	comment, err := s.engagementRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		if common.IsRecordNotFound(err) {
			return common.ErrNotFound
		}
		return err
	}

	if comment.UserID != actorID {
		post, err := s.GetPost(ctx, comment.PostID)
		if err != nil {
			return err
		}
		if post.UserID != actorID {
			return common.ErrPermission
		}
	}

	return s.engagementRepo.DeleteComment(ctx, commentID)
}
