package service

import (
	"context"
	"strings"
	"testing"

	"socialbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_AddComment(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		comments := noopCommentRepo()
		comments.createFn = func(_ context.Context, c *models.Comment) error {
			c.ID = 5
			return nil
		}
		comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, PostID: 10, UserID: 2, Content: "nice", User: models.User{ID: 2, Username: "bob"}}, nil
		}
		svc := NewCommentService(comments, noopPostRepo(), noopUserRepo())

		comment, err := svc.AddComment(context.Background(), 10, 2, "nice")
		require.NoError(t, err)
		assert.Equal(t, uint(5), comment.ID)
		assert.Equal(t, "bob", comment.User.Username)
	})

	t.Run("unknown post", func(t *testing.T) {
		t.Parallel()
		posts := noopPostRepo()
		posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post", id)
		}
		svc := NewCommentService(noopCommentRepo(), posts, noopUserRepo())

		_, err := svc.AddComment(context.Background(), 99, 1, "hello")
		assertAppErrorCode(t, err, models.CodeUnknownReference)
	})

	t.Run("content validation", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(noopCommentRepo(), noopPostRepo(), noopUserRepo())

		_, err := svc.AddComment(context.Background(), 10, 1, "")
		assertAppErrorCode(t, err, models.CodeValidation)

		_, err = svc.AddComment(context.Background(), 10, 1, strings.Repeat("x", 2001))
		assertAppErrorCode(t, err, models.CodeValidation)
	})
}

func TestCommentService_ListComments(t *testing.T) {
	t.Parallel()

	t.Run("missing post propagates not found", func(t *testing.T) {
		t.Parallel()
		posts := noopPostRepo()
		posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post", id)
		}
		svc := NewCommentService(noopCommentRepo(), posts, noopUserRepo())

		_, err := svc.ListComments(context.Background(), 99)
		assertAppErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(noopCommentRepo(), noopPostRepo(), noopUserRepo())

		comments, err := svc.ListComments(context.Background(), 10)
		require.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)
	})
}
