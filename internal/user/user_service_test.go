package user

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"socialnet/internal/common"
	"socialnet/internal/config"
	"socialnet/internal/dbmysql"
)

func testTokenManager() *common.TokenManager {
	return common.NewTokenManager(&config.Config{
		Auth: config.AuthConfig{JWTSecret: "test-secret", TokenTTLHrs: 1},
	})
}

func TestUserService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := NewMockUserRepository(ctrl)
	mockFriendRepo := NewMockFriendRepository(ctrl)
	svc := NewUserService(mockUserRepo, mockFriendRepo, testTokenManager())
	ctx := context.Background()

	tests := []struct {
		name        string
		username    string
		email       string
		password    string
		setup       func()
		wantErr     bool
		errContains string
	}{
		{
			name:     "success",
			username: "alice",
			email:    "alice@example.com",
			password: "Password123",
			setup: func() {
				mockUserRepo.EXPECT().CheckUserExists(ctx, "alice").Return(false, nil)
				mockUserRepo.EXPECT().CreateUserWithProfile(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, u *dbmysql.User) error {
						u.UserID = 1
						return nil
					})
			},
		},
		{
			name:     "duplicate username",
			username: "bob",
			email:    "bob@example.com",
			password: "Password123",
			setup: func() {
				mockUserRepo.EXPECT().CheckUserExists(ctx, "bob").Return(true, nil)
			},
			wantErr:     true,
			errContains: "taken",
		},
		{
			name:        "invalid username",
			username:    "!",
			email:       "x@y.com",
			password:    "Password123",
			setup:       func() {},
			wantErr:     true,
			errContains: "username",
		},
		{
			name:        "invalid email",
			username:    "carol",
			email:       "bademail",
			password:    "Password123",
			setup:       func() {},
			wantErr:     true,
			errContains: "email",
		},
		{
			name:        "invalid password",
			username:    "dave",
			email:       "dave@example.com",
			password:    "short",
			setup:       func() {},
			wantErr:     true,
			errContains: "password",
		},
		{
			name:     "repo failure on exists check",
			username: "erin",
			email:    "erin@example.com",
			password: "Password123",
			setup: func() {
				mockUserRepo.EXPECT().CheckUserExists(ctx, "erin").Return(false, errors.New("db is down"))
			},
			wantErr:     true,
			errContains: "db is down",
		},
		{
			name:     "repo failure on create",
			username: "frank",
			email:    "frank@example.com",
			password: "Password123",
			setup: func() {
				mockUserRepo.EXPECT().CheckUserExists(ctx, "frank").Return(false, nil)
				mockUserRepo.EXPECT().CreateUserWithProfile(ctx, gomock.Any()).Return(errors.New("create fail"))
			},
			wantErr:     true,
			errContains: "create fail",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			u, err := svc.Register(ctx, tc.username, tc.email, tc.password)
			if tc.wantErr {
				require.Error(t, err)
				if tc.errContains != "" {
					require.Contains(t, err.Error(), tc.errContains)
				}
				return
			}
			require.NoError(t, err)
			require.NotNil(t, u)
			require.Equal(t, tc.username, u.Username)
			require.NotEmpty(t, u.PasswordHash)
			require.NotEqual(t, tc.password, u.PasswordHash)
		})
	}
}

func TestUserService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := NewMockUserRepository(ctrl)
	mockFriendRepo := NewMockFriendRepository(ctrl)
	svc := NewUserService(mockUserRepo, mockFriendRepo, testTokenManager())
	ctx := context.Background()

	hash, err := common.HashPassword("Password123")
	require.NoError(t, err)
	stored := &dbmysql.User{UserID: 7, Username: "alice", PasswordHash: hash}

	t.Run("success returns token", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByUsername(ctx, "alice").Return(stored, nil)

		u, token, err := svc.Authenticate(ctx, "alice", "Password123")
		require.NoError(t, err)
		require.Equal(t, uint64(7), u.UserID)
		require.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByUsername(ctx, "alice").Return(stored, nil)

		_, _, err := svc.Authenticate(ctx, "alice", "wrong")
		require.Error(t, err)
		require.True(t, common.IsValidation(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByUsername(ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)

		_, _, err := svc.Authenticate(ctx, "ghost", "Password123")
		require.Error(t, err)
		require.True(t, common.IsValidation(err))
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, _, err := svc.Authenticate(ctx, "", "")
		require.Error(t, err)
	})
}

func TestUserService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := NewMockUserRepository(ctrl)
	mockFriendRepo := NewMockFriendRepository(ctrl)
	svc := NewUserService(mockUserRepo, mockFriendRepo, testTokenManager())
	ctx := context.Background()

	mockFriendRepo.EXPECT().CountFriends(ctx, uint64(3)).Return(int64(2), nil)
	mockUserRepo.EXPECT().CountLikesGiven(ctx, uint64(3)).Return(int64(5), nil)
	mockUserRepo.EXPECT().CountCommentsMade(ctx, uint64(3)).Return(int64(8), nil)

	stats, err := svc.Stats(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.FriendCount)
	require.Equal(t, int64(5), stats.LikesGiven)
	require.Equal(t, int64(8), stats.CommentsMade)
}
