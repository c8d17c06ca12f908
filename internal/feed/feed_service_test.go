package feed

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"socialnet/internal/common"
	"socialnet/internal/dbmysql"
)

// ---- In-memory fakes for repositories ----

type fakePostRepo struct {
	store map[uint64]dbmysql.Post
	next  uint64
	clock time.Time

	CreateCalls int
	DeleteCalls int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{
		store: map[uint64]dbmysql.Post{},
		next:  1,
		clock: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (r *fakePostRepo) CreatePost(ctx context.Context, p *dbmysql.Post) error {
	r.CreateCalls++
	p.PostID = r.next
	r.next++
	r.clock = r.clock.Add(time.Minute)
	p.CreatedAt = r.clock
	p.UpdatedAt = r.clock
	r.store[p.PostID] = *p
	return nil
}

func (r *fakePostRepo) GetPostByID(ctx context.Context, id uint64) (*dbmysql.Post, error) {
	p, ok := r.store[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	// copy to avoid aliasing
	pp := p
	return &pp, nil
}

func (r *fakePostRepo) UpdatePost(ctx context.Context, p *dbmysql.Post) error {
	if _, ok := r.store[p.PostID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.store[p.PostID] = *p
	return nil
}

func (r *fakePostRepo) DeletePost(ctx context.Context, id uint64) error {
	r.DeleteCalls++
	delete(r.store, id)
	return nil
}

func (r *fakePostRepo) ListGlobal(ctx context.Context, limit int) ([]dbmysql.Post, error) {
	out := r.all(func(dbmysql.Post) bool { return true })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakePostRepo) ListByAuthors(ctx context.Context, authorIDs []uint64) ([]dbmysql.Post, error) {
	allowed := map[uint64]bool{}
	for _, id := range authorIDs {
		allowed[id] = true
	}
	return r.all(func(p dbmysql.Post) bool { return allowed[p.UserID] }), nil
}

func (r *fakePostRepo) all(keep func(dbmysql.Post) bool) []dbmysql.Post {
	out := []dbmysql.Post{}
	for _, p := range r.store {
		if keep(p) {
			out = append(out, p)
		}
	}
	// newest first, like the real repository
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

type likeKey struct {
	user, post uint64
}

type fakeEngagementRepo struct {
	likes    map[likeKey]dbmysql.Like
	comments map[uint64]dbmysql.Comment
	nextLike uint64
	nextCom  uint64

	// When set, the next CreateLike fails with a duplicate-key error, as if
	// a concurrent toggle won the insert.
	FailCreateLikeAsDuplicate bool
}

func newFakeEngagementRepo() *fakeEngagementRepo {
	return &fakeEngagementRepo{
		likes:    map[likeKey]dbmysql.Like{},
		comments: map[uint64]dbmysql.Comment{},
		nextLike: 1,
		nextCom:  1,
	}
}

func (r *fakeEngagementRepo) GetLike(ctx context.Context, userID, postID uint64) (*dbmysql.Like, error) {
	l, ok := r.likes[likeKey{userID, postID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	ll := l
	return &ll, nil
}

func (r *fakeEngagementRepo) CreateLike(ctx context.Context, like *dbmysql.Like) error {
	if r.FailCreateLikeAsDuplicate {
		r.FailCreateLikeAsDuplicate = false
		return gorm.ErrDuplicatedKey
	}
	key := likeKey{like.UserID, like.PostID}
	if _, exists := r.likes[key]; exists {
		return gorm.ErrDuplicatedKey
	}
	like.ID = r.nextLike
	r.nextLike++
	r.likes[key] = *like
	return nil
}

func (r *fakeEngagementRepo) DeleteLike(ctx context.Context, userID, postID uint64) error {
	delete(r.likes, likeKey{userID, postID})
	return nil
}

func (r *fakeEngagementRepo) CreateComment(ctx context.Context, comment *dbmysql.Comment) error {
	comment.CommentID = r.nextCom
	r.nextCom++
	r.comments[comment.CommentID] = *comment
	return nil
}

func (r *fakeEngagementRepo) GetCommentByID(ctx context.Context, id uint64) (*dbmysql.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cc := c
	return &cc, nil
}

func (r *fakeEngagementRepo) DeleteComment(ctx context.Context, id uint64) error {
	delete(r.comments, id)
	return nil
}

// fakeFriendGraph implements user.FriendService; only FriendsOf matters to
// the feed composer.
type fakeFriendGraph struct {
	friends map[uint64][]*dbmysql.User
}

func newFakeFriendGraph() *fakeFriendGraph {
	return &fakeFriendGraph{friends: map[uint64][]*dbmysql.User{}}
}

func (g *fakeFriendGraph) befriend(a, b *dbmysql.User) {
	g.friends[a.UserID] = append(g.friends[a.UserID], b)
	g.friends[b.UserID] = append(g.friends[b.UserID], a)
}

func (g *fakeFriendGraph) FriendsOf(ctx context.Context, userID uint64) ([]*dbmysql.User, error) {
	return g.friends[userID], nil
}

func (g *fakeFriendGraph) RequestFriendship(ctx context.Context, actorID, targetID uint64) (*dbmysql.Friendship, bool, error) {
	return nil, false, nil
}

func (g *fakeFriendGraph) AcceptFriendship(ctx context.Context, friendshipID, actingUserID uint64) error {
	return nil
}

func (g *fakeFriendGraph) FriendshipBetween(ctx context.Context, a, b uint64) (*dbmysql.Friendship, error) {
	return nil, nil
}

func (g *fakeFriendGraph) PendingRequestsFor(ctx context.Context, userID uint64) ([]*dbmysql.Friendship, error) {
	return nil, nil
}

// ---- Tests ----

func newTestService() (*fakePostRepo, *fakeEngagementRepo, *fakeFriendGraph, FeedUsecase) {
	posts := newFakePostRepo()
	engagement := newFakeEngagementRepo()
	graph := newFakeFriendGraph()
	return posts, engagement, graph, NewFeedService(posts, engagement, graph)
}

func TestComposeFeed_AnonymousGetsGlobalNewestFirst(t *testing.T) {
	_, _, _, svc := newTestService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.CreatePost(ctx, uint64(i+1), "post content")
		require.NoError(t, err)
	}

	posts, emptyFeed, err := svc.ComposeFeed(ctx, 0)
	require.NoError(t, err)
	require.False(t, emptyFeed)
	require.Len(t, posts, 3)
	for i := 1; i < len(posts); i++ {
		require.True(t, posts[i-1].CreatedAt.After(posts[i].CreatedAt), "posts must be newest first")
	}
}

func TestComposeFeed_AnonymousCappedAtFifty(t *testing.T) {
	_, _, _, svc := newTestService()
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		_, err := svc.CreatePost(ctx, 1, "post content")
		require.NoError(t, err)
	}

	posts, _, err := svc.ComposeFeed(ctx, 0)
	require.NoError(t, err)
	require.Len(t, posts, 50)
}

func TestComposeFeed_PersonalizedExcludesNonFriends(t *testing.T) {
	_, _, graph, svc := newTestService()
	ctx := context.Background()

	viewer := &dbmysql.User{UserID: 1}
	friend := &dbmysql.User{UserID: 2}
	stranger := &dbmysql.User{UserID: 3}
	graph.befriend(viewer, friend)

	_, err := svc.CreatePost(ctx, viewer.UserID, "mine")
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, friend.UserID, "friend's")
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, stranger.UserID, "stranger's")
	require.NoError(t, err)

	posts, emptyFeed, err := svc.ComposeFeed(ctx, viewer.UserID)
	require.NoError(t, err)
	require.False(t, emptyFeed)
	require.Len(t, posts, 2)
	for _, p := range posts {
		require.NotEqual(t, stranger.UserID, p.UserID)
	}
}

func TestComposeFeed_EmptyPersonalizedFallsBackFlagged(t *testing.T) {
	_, _, _, svc := newTestService()
	ctx := context.Background()

	// Viewer 9 has no friends and no posts; others have posted.
	_, err := svc.CreatePost(ctx, 1, "someone else's post")
	require.NoError(t, err)

	posts, emptyFeed, err := svc.ComposeFeed(ctx, 9)
	require.NoError(t, err)
	require.True(t, emptyFeed)
	require.Len(t, posts, 1)
}

func TestCreatePost_Validation(t *testing.T) {
	_, _, _, svc := newTestService()
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, 1, "   ")
	require.Error(t, err)
	require.True(t, common.IsValidation(err))

	post, err := svc.CreatePost(ctx, 1, "  hello  ")
	require.NoError(t, err)
	require.Equal(t, "hello", post.Content)
}

func TestEditPost_OwnershipAndValidation(t *testing.T) {
	_, _, _, svc := newTestService()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, 1, "original")
	require.NoError(t, err)

	err = svc.EditPost(ctx, 2, post.PostID, "hijacked")
	require.ErrorIs(t, err, common.ErrPermission)

	err = svc.EditPost(ctx, 1, post.PostID, " ")
	require.True(t, common.IsValidation(err))

	require.NoError(t, svc.EditPost(ctx, 1, post.PostID, "updated"))
	got, err := svc.GetPost(ctx, post.PostID)
	require.NoError(t, err)
	require.Equal(t, "updated", got.Content)
}

func TestDeletePost_OwnershipChecked(t *testing.T) {
	postRepo, _, _, svc := newTestService()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, 1, "to delete")
	require.NoError(t, err)

	err = svc.DeletePost(ctx, 2, post.PostID)
	require.ErrorIs(t, err, common.ErrPermission)
	require.Zero(t, postRepo.DeleteCalls)

	require.NoError(t, svc.DeletePost(ctx, 1, post.PostID))
	require.Equal(t, 1, postRepo.DeleteCalls)

	_, err = svc.GetPost(ctx, post.PostID)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestToggleLike_Parity(t *testing.T) {
	_, engagement, _, svc := newTestService()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, 1, "likeable")
	require.NoError(t, err)

	// Odd number of toggles leaves exactly one row.
	for i := 0; i < 3; i++ {
		_, err := svc.ToggleLike(ctx, 2, post.PostID)
		require.NoError(t, err)
	}
	require.Len(t, engagement.likes, 1)

	// One more toggle returns to zero.
	result, err := svc.ToggleLike(ctx, 2, post.PostID)
	require.NoError(t, err)
	require.Equal(t, Unliked, result)
	require.Empty(t, engagement.likes)
}

func TestToggleLike_DuplicateRaceIsNoOp(t *testing.T) {
	_, engagement, _, svc := newTestService()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, 1, "contended")
	require.NoError(t, err)

	engagement.FailCreateLikeAsDuplicate = true
	result, err := svc.ToggleLike(ctx, 2, post.PostID)
	require.NoError(t, err)
	require.Equal(t, Liked, result)
}

func TestToggleLike_MissingPost(t *testing.T) {
	_, _, _, svc := newTestService()
	ctx := context.Background()

	_, err := svc.ToggleLike(ctx, 2, 999)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestAddComment_Validation(t *testing.T) {
	_, _, _, svc := newTestService()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, 1, "commentable")
	require.NoError(t, err)

	_, err = svc.AddComment(ctx, 2, post.PostID, "  ")
	require.True(t, common.IsValidation(err))

	comment, err := svc.AddComment(ctx, 2, post.PostID, " nice post ")
	require.NoError(t, err)
	require.Equal(t, "nice post", comment.Content)
}

func TestDeleteComment_Permissions(t *testing.T) {
	_, engagement, _, svc := newTestService()
	ctx := context.Background()

	const owner, author, other = uint64(1), uint64(2), uint64(3)

	post, err := svc.CreatePost(ctx, owner, "discussion")
	require.NoError(t, err)

	t.Run("author may delete", func(t *testing.T) {
		comment, err := svc.AddComment(ctx, author, post.PostID, "mine")
		require.NoError(t, err)
		require.NoError(t, svc.DeleteComment(ctx, author, comment.CommentID))
	})

	t.Run("post owner may delete", func(t *testing.T) {
		comment, err := svc.AddComment(ctx, author, post.PostID, "on your post")
		require.NoError(t, err)
		require.NoError(t, svc.DeleteComment(ctx, owner, comment.CommentID))
	})

	t.Run("anyone else is rejected", func(t *testing.T) {
		comment, err := svc.AddComment(ctx, author, post.PostID, "protected")
		require.NoError(t, err)
		err = svc.DeleteComment(ctx, other, comment.CommentID)
		require.ErrorIs(t, err, common.ErrPermission)
		_, ok := engagement.comments[comment.CommentID]
		require.True(t, ok, "comment must survive a rejected delete")
	})
}
