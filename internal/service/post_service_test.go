package service

import (
	"context"
	"strings"
	"testing"

	"socialbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_CreatePost(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		posts := noopPostRepo()
		posts.createFn = func(_ context.Context, p *models.Post) error {
			p.ID = 10
			return nil
		}
		posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 1, Content: "hello", User: models.User{ID: 1, Username: "alice"}}, nil
		}
		svc := NewPostService(posts, noopUserRepo())

		post, err := svc.CreatePost(context.Background(), 1, "hello")
		require.NoError(t, err)
		assert.Equal(t, uint(10), post.ID)
		assert.Equal(t, "alice", post.User.Username)
	})

	t.Run("unknown author", func(t *testing.T) {
		t.Parallel()
		users := noopUserRepo()
		users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		}
		svc := NewPostService(noopPostRepo(), users)

		_, err := svc.CreatePost(context.Background(), 99, "hello")
		assertAppErrorCode(t, err, models.CodeUnknownReference)
	})

	t.Run("content validation", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(noopPostRepo(), noopUserRepo())

		_, err := svc.CreatePost(context.Background(), 1, "   ")
		assertAppErrorCode(t, err, models.CodeValidation)

		_, err = svc.CreatePost(context.Background(), 1, strings.Repeat("x", 5001))
		assertAppErrorCode(t, err, models.CodeValidation)
	})
}

func TestPostService_LikePost(t *testing.T) {
	t.Parallel()

	t.Run("returns like state including viewer", func(t *testing.T) {
		t.Parallel()
		posts := noopPostRepo()
		posts.getLikerIDsFn = func(context.Context, uint) ([]uint, error) {
			return []uint{1, 3}, nil
		}
		svc := NewPostService(posts, noopUserRepo())

		state, err := svc.LikePost(context.Background(), 10, 3)
		require.NoError(t, err)
		assert.Equal(t, uint(10), state.PostID)
		assert.Equal(t, []uint{1, 3}, state.Likes)
		assert.Equal(t, 2, state.LikeCount)
		assert.True(t, state.Liked)
	})

	t.Run("unknown post", func(t *testing.T) {
		t.Parallel()
		posts := noopPostRepo()
		posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post", id)
		}
		svc := NewPostService(posts, noopUserRepo())

		_, err := svc.LikePost(context.Background(), 99, 1)
		assertAppErrorCode(t, err, models.CodeUnknownReference)
	})

	t.Run("empty like set is not nil", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(noopPostRepo(), noopUserRepo())

		state, err := svc.LikePost(context.Background(), 10, 1)
		require.NoError(t, err)
		assert.NotNil(t, state.Likes)
	})
}
