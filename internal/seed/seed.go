// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"socialbook/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeder populates the database with generated users, friendships, posts,
// likes, and comments.
type Seeder struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded rows. Child tables go first so foreign keys
// never dangle mid-cleanup.
func (s *Seeder) ClearAll() error {
	for _, model := range []any{
		&models.Like{},
		&models.Comment{},
		&models.Post{},
		&models.Friendship{},
		&models.User{},
	} {
		if err := s.db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	return nil
}

// Run seeds numUsers accounts and numPosts posts, then wires a social mesh of
// friendships, likes, and comments between them. Every account gets the
// password "password123".
func (s *Seeder) Run(numUsers, numPosts int) error {
	users, err := s.seedUsers(numUsers)
	if err != nil {
		return err
	}
	if err := s.seedFriendships(users); err != nil {
		return err
	}
	posts, err := s.seedPosts(users, numPosts)
	if err != nil {
		return err
	}
	if err := s.seedLikes(users, posts); err != nil {
		return err
	}
	return s.seedComments(users, posts)
}

func (s *Seeder) seedUsers(n int) ([]models.User, error) {
	// One hash for every demo account; bcrypt per user is needlessly slow here.
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Email:    gofakeit.Email(),
			Password: string(hash),
			Bio:      gofakeit.Sentence(10),
		})
	}
	if err := s.db.Create(&users).Error; err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}
	return users, nil
}

func (s *Seeder) seedFriendships(users []models.User) error {
	if len(users) < 2 {
		return nil
	}
	for i := range users {
		// Roughly three friends per user; duplicates collapse on the
		// unique pair index.
		for j := 0; j < 3; j++ {
			other := s.rnd.Intn(len(users))
			if users[other].ID == users[i].ID {
				continue
			}
			friendship := models.Friendship{
				UserAID: users[i].ID,
				UserBID: users[other].ID,
			}
			err := s.db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_a_id"}, {Name: "user_b_id"}},
				DoNothing: true,
			}).Create(&friendship).Error
			if err != nil {
				return fmt.Errorf("seed friendships: %w", err)
			}
		}
	}
	return nil
}

func (s *Seeder) seedPosts(users []models.User, n int) ([]models.Post, error) {
	if len(users) == 0 || n == 0 {
		return nil, nil
	}
	posts := make([]models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rnd.Intn(len(users))]
		posts = append(posts, models.Post{
			UserID:    author.ID,
			Content:   gofakeit.Paragraph(1, 3, 8, "\n"),
			CreatedAt: time.Now().Add(-time.Duration(s.rnd.Intn(90*24)) * time.Hour),
		})
	}
	if err := s.db.Create(&posts).Error; err != nil {
		return nil, fmt.Errorf("seed posts: %w", err)
	}
	return posts, nil
}

func (s *Seeder) seedLikes(users []models.User, posts []models.Post) error {
	for i := range posts {
		for j := 0; j < s.rnd.Intn(4); j++ {
			like := models.Like{
				UserID: users[s.rnd.Intn(len(users))].ID,
				PostID: posts[i].ID,
			}
			err := s.db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
				DoNothing: true,
			}).Create(&like).Error
			if err != nil {
				return fmt.Errorf("seed likes: %w", err)
			}
		}
	}
	return nil
}

func (s *Seeder) seedComments(users []models.User, posts []models.Post) error {
	for i := range posts {
		for j := 0; j < s.rnd.Intn(3); j++ {
			comment := models.Comment{
				UserID:  users[s.rnd.Intn(len(users))].ID,
				PostID:  posts[i].ID,
				Content: gofakeit.Sentence(12),
			}
			if err := s.db.Create(&comment).Error; err != nil {
				return fmt.Errorf("seed comments: %w", err)
			}
		}
	}
	return nil
}
