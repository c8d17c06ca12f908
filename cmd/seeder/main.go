// Seeder fills the database with demo users, posts, friendships and
// engagement so a fresh install has something to show.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/joho/godotenv"

	"socialnet/internal/common"
	"socialnet/internal/config"
	"socialnet/internal/dbmysql"
	"socialnet/internal/feed"
	"socialnet/internal/user"
)

const seedPassword = "Password@123"

func main() {
	numUsers := flag.Int("users", 8, "number of users to create")
	postsPerUser := flag.Int("posts-per-user", 3, "posts per user")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		common.Log.Info(".env file not found, using system env variables")
	}

	cfg := config.Load()
	common.InitLogger(cfg.Logging)

	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		common.Log.WithError(err).Fatal("failed to initialize database")
	}

	gofakeit.Seed(time.Now().UnixNano())
	ctx := context.Background()

	userRepo := user.NewUserRepository(db)
	friendRepo := user.NewFriendRepository(db)
	tokens := common.NewTokenManager(cfg)
	users := user.NewUserService(userRepo, friendRepo, tokens)
	friends := user.NewFriendService(friendRepo)
	feedSvc := feed.NewFeedService(feed.NewPostRepository(db), feed.NewEngagementRepository(db), friends)

	// Users with posts spread over the last month.
	seeded := make([]*dbmysql.User, 0, *numUsers)
	for i := 0; i < *numUsers; i++ {
		username := fmt.Sprintf("%s%d", gofakeit.Word(), gofakeit.Number(10, 999))
		u, err := users.Register(ctx, username, gofakeit.Email(), seedPassword)
		if err != nil {
			common.Log.WithError(err).WithField("username", username).Warn("skipping user")
			continue
		}
		seeded = append(seeded, u)

		for p := 0; p < *postsPerUser; p++ {
			post, err := feedSvc.CreatePost(ctx, u.UserID, gofakeit.Sentence(rand.Intn(10)+4))
			if err != nil {
				common.Log.WithError(err).Warn("skipping post")
				continue
			}
			// Backdate so the feed does not look minted in one instant.
			createdAt := time.Now().AddDate(0, 0, -rand.Intn(30))
			db.Model(&dbmysql.Post{}).
				Where("post_id = ?", post.PostID).
				Updates(map[string]interface{}{"created_at": createdAt, "updated_at": createdAt})
		}
	}

	// Random accepted friendships.
	for i := range seeded {
		for j := i + 1; j < len(seeded); j++ {
			if rand.Intn(3) != 0 {
				continue
			}
			friendship, created, err := friends.RequestFriendship(ctx, seeded[i].UserID, seeded[j].UserID)
			if err != nil || !created {
				continue
			}
			if err := friends.AcceptFriendship(ctx, friendship.ID, seeded[j].UserID); err != nil {
				common.Log.WithError(err).Warn("skipping accept")
			}
		}
	}

	// Likes and comments across the global feed.
	posts, _, err := feedSvc.ComposeFeed(ctx, 0)
	if err != nil {
		common.Log.WithError(err).Fatal("loading seeded posts")
	}
	for _, post := range posts {
		for _, u := range seeded {
			if rand.Intn(4) == 0 {
				if _, err := feedSvc.ToggleLike(ctx, u.UserID, post.PostID); err != nil {
					common.Log.WithError(err).Warn("skipping like")
				}
			}
			if rand.Intn(6) == 0 {
				if _, err := feedSvc.AddComment(ctx, u.UserID, post.PostID, gofakeit.HipsterSentence(rand.Intn(6)+3)); err != nil {
					common.Log.WithError(err).Warn("skipping comment")
				}
			}
		}
	}

	common.Log.WithField("users", len(seeded)).Info("seeding complete")
}
