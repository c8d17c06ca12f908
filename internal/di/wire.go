//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"socialnet/internal/common"
	"socialnet/internal/config"
	"socialnet/internal/feed"
	"socialnet/internal/notif"
	"socialnet/internal/user"
	"socialnet/internal/web"
)

// This is just a declaration; wire generates the real body in wire_gen.go.
func InitializeApplication(db *gorm.DB, cfg *config.Config) (*Application, error) {
	wire.Build(
		common.NewTokenManager,
		user.NewUserRepository,
		user.NewFriendRepository,
		user.NewUserService,
		user.NewFriendService,
		feed.NewPostRepository,
		feed.NewEngagementRepository,
		feed.NewFeedService,
		notif.NewNotificationRepository,
		notif.NewNotificationService,
		web.NewRenderer,
		web.NewHandler,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
