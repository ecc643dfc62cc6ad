// Package seed provides database seeding utilities for development and demos.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"commune/internal/models"
	"commune/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumPosts    int
	ShouldClean bool
	// RandSeed makes a run reproducible when non-zero.
	RandSeed int64
}

// usernames are fixed so repeated seeding reuses the same cast instead of
// growing the users table.
var usernames = []string{
	"alice", "bob", "carol", "dave", "erin", "frank", "grace", "henry",
}

var topics = []string{
	"coffee", "side projects", "the weather", "a new framework", "weekend plans",
	"a book worth reading", "keyboard setups", "home cooking", "trail running",
	"city biking", "houseplants", "board games",
}

// Seed populates the database with demo data: the fixed user cast, posts
// spread over the last two days and likes spread over the last day and a
// half, so a fresh leaderboard has both in-window and out-of-window karma.
func Seed(db *gorm.DB, opts Options) error {
	ctx := context.Background()

	seedVal := opts.RandSeed
	if seedVal == 0 {
		seedVal = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seedVal))
	gofakeit.Seed(seedVal)

	if opts.ShouldClean {
		if err := clean(db); err != nil {
			return fmt.Errorf("cleaning tables: %w", err)
		}
	}

	users, err := seedUsers(db)
	if err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}

	numPosts := opts.NumPosts
	if numPosts <= 0 {
		numPosts = 12
	}

	now := time.Now().UTC()
	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[r.Intn(len(users))]
		createdAt := now.Add(-time.Duration(r.Intn(48*60)) * time.Minute)
		post := &models.Post{
			UserID:    author.ID,
			Content:   postContent(r),
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		}
		if err := db.Create(post).Error; err != nil {
			return fmt.Errorf("seeding posts: %w", err)
		}
		posts = append(posts, post)
	}

	comments, err := seedComments(db, r, users, posts, now)
	if err != nil {
		return fmt.Errorf("seeding comments: %w", err)
	}

	if err := seedLikes(ctx, db, r, users, posts, comments, now); err != nil {
		return fmt.Errorf("seeding likes: %w", err)
	}

	return nil
}

func clean(db *gorm.DB) error {
	for _, table := range []string{"likes", "comments", "posts", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedUsers(db *gorm.DB) ([]*models.User, error) {
	repo := repository.NewUserRepository(db)
	users := make([]*models.User, 0, len(usernames))
	for _, name := range usernames {
		user, err := repo.GetOrCreateByUsername(context.Background(), name)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func postContent(r *rand.Rand) string {
	topic := topics[r.Intn(len(topics))]
	return fmt.Sprintf("Thinking about %s. %s", topic, gofakeit.Sentence(8+r.Intn(10)))
}

// seedComments builds a small thread per post: a few roots plus replies
// hanging off randomly chosen earlier comments, so the forest has depth.
func seedComments(db *gorm.DB, r *rand.Rand, users []*models.User, posts []*models.Post, now time.Time) ([]*models.Comment, error) {
	repo := repository.NewCommentRepository(db)
	var all []*models.Comment

	for _, post := range posts {
		var onPost []*models.Comment

		numRoots := 1 + r.Intn(4)
		for i := 0; i < numRoots; i++ {
			c, err := createSeedComment(repo, r, users, post, nil, now)
			if err != nil {
				return nil, err
			}
			onPost = append(onPost, c)
		}

		numReplies := r.Intn(5)
		for i := 0; i < numReplies && len(onPost) > 0; i++ {
			parent := onPost[r.Intn(len(onPost))]
			c, err := createSeedComment(repo, r, users, post, &parent.ID, now)
			if err != nil {
				return nil, err
			}
			onPost = append(onPost, c)
		}

		all = append(all, onPost...)
	}
	return all, nil
}

func createSeedComment(repo repository.CommentRepository, r *rand.Rand, users []*models.User, post *models.Post, parentID *uint, now time.Time) (*models.Comment, error) {
	author := users[r.Intn(len(users))]
	createdAt := post.CreatedAt.Add(time.Duration(1+r.Intn(600)) * time.Minute)
	if createdAt.After(now) {
		createdAt = now
	}
	comment := &models.Comment{
		PostID:    post.ID,
		ParentID:  parentID,
		UserID:    author.ID,
		Content:   strings.TrimSpace(gofakeit.Sentence(4 + r.Intn(12))),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := repo.Create(context.Background(), comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// seedLikes goes through the like repository so the denormalized counters
// stay consistent with the ledger. Timestamps spread across the last 36
// hours; roughly a third land outside a 24h leaderboard window.
func seedLikes(ctx context.Context, db *gorm.DB, r *rand.Rand, users []*models.User, posts []*models.Post, comments []*models.Comment, now time.Time) error {
	for _, post := range posts {
		for _, user := range users {
			if user.ID == post.UserID || r.Intn(3) != 0 {
				continue
			}
			likedAt := now.Add(-time.Duration(r.Intn(36*60)) * time.Minute)
			repo := repository.NewLikeRepositoryWithClock(db, func() time.Time { return likedAt })
			if _, err := repo.LikePost(ctx, user.ID, post.ID); err != nil {
				return err
			}
		}
	}

	for _, comment := range comments {
		for _, user := range users {
			if user.ID == comment.UserID || r.Intn(5) != 0 {
				continue
			}
			likedAt := now.Add(-time.Duration(r.Intn(36*60)) * time.Minute)
			repo := repository.NewLikeRepositoryWithClock(db, func() time.Time { return likedAt })
			if _, err := repo.LikeComment(ctx, user.ID, comment.ID); err != nil {
				return err
			}
		}
	}
	return nil
}
