package user

import (
	"context"

	"github.com/pkg/errors"

	"socialnet/internal/common"
	"socialnet/internal/dbmysql"
)

// ProfileStats is the aggregate block shown on a profile page.
type ProfileStats struct {
	FriendCount  int64
	LikesGiven   int64
	CommentsMade int64
}

type UserService interface {
	Register(ctx context.Context, username, email, password string) (*dbmysql.User, error)
	Authenticate(ctx context.Context, username, password string) (*dbmysql.User, string, error)
	GetByID(ctx context.Context, userID uint64) (*dbmysql.User, error)
	GetByUsername(ctx context.Context, username string) (*dbmysql.User, error)
	Stats(ctx context.Context, userID uint64) (*ProfileStats, error)
}

type userService struct {
	userRepo   UserRepository
	friendRepo FriendRepository
	tokens     *common.TokenManager
}

func NewUserService(userRepo UserRepository, friendRepo FriendRepository, tokens *common.TokenManager) UserService {
	return &userService{userRepo: userRepo, friendRepo: friendRepo, tokens: tokens}
}

// Register creates an account together with its empty profile.
func (s *userService) Register(ctx context.Context, username, email, password string) (*dbmysql.User, error) {
	if err := common.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.CheckUserExists(ctx, username)
	if err != nil {
		return nil, errors.Wrap(err, "checking username")
	}
	if exists {
		return nil, common.NewValidationError("username already taken")
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, errors.Wrap(err, "hashing password")
	}

	u := &dbmysql.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	}

	if err := s.userRepo.CreateUserWithProfile(ctx, u); err != nil {
		// Lost a race on the unique username index.
		if common.IsDuplicate(err) {
			return nil, common.NewValidationError("username already taken")
		}
		return nil, errors.Wrap(err, "creating user")
	}

	return u, nil
}

// Authenticate verifies credentials and returns a signed session token.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*dbmysql.User, string, error) {
	if username == "" || password == "" {
		return nil, "", common.NewValidationError("username and password required")
	}

	u, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if common.IsRecordNotFound(err) {
			return nil, "", common.NewValidationError("invalid username or password")
		}
		return nil, "", errors.Wrap(err, "looking up user")
	}

	if err := common.CheckPassword(password, u.PasswordHash); err != nil {
		return nil, "", common.NewValidationError("invalid username or password")
	}

	token, err := s.tokens.GenerateToken(u.UserID, u.Username)
	if err != nil {
		return nil, "", errors.Wrap(err, "signing token")
	}
	return u, token, nil
}

func (s *userService) GetByID(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	u, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if common.IsRecordNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*dbmysql.User, error) {
	u, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if common.IsRecordNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) Stats(ctx context.Context, userID uint64) (*ProfileStats, error) {
	friends, err := s.friendRepo.CountFriends(ctx, userID)
	if err != nil {
		return nil, err
	}
	likes, err := s.userRepo.CountLikesGiven(ctx, userID)
	if err != nil {
		return nil, err
	}
	comments, err := s.userRepo.CountCommentsMade(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ProfileStats{
		FriendCount:  friends,
		LikesGiven:   likes,
		CommentsMade: comments,
	}, nil
}
