package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"socialbook/internal/models"
	"socialbook/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) ListByAuthorIDs(ctx context.Context, authorIDs []uint) ([]models.Post, error) {
	args := m.Called(ctx, authorIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) Like(ctx context.Context, userID, postID uint) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockPostRepository) GetLikerIDs(ctx context.Context, postID uint) ([]uint, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockPostRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) ListSuggestions(ctx context.Context, viewerID uint, limit int) ([]models.User, error) {
	args := m.Called(ctx, viewerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func newPostTestApp(postRepo *MockPostRepository, userRepo *MockUserRepository) (*fiber.App, *Server) {
	app := fiber.New()
	s := &Server{}
	s.postService = service.NewPostService(postRepo, userRepo)

	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", uint(1))
		return c.Next()
	})
	app.Post("/posts", s.CreatePost)
	app.Post("/posts/:id/like", s.LikePost)
	app.Get("/posts/:id", s.GetPost)
	return app, s
}

func TestCreatePost(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(postRepo *MockPostRepository, userRepo *MockUserRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{"content": "Hello world"},
			mockSetup: func(postRepo *MockPostRepository, userRepo *MockUserRepository) {
				userRepo.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1}, nil)
				postRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
				postRepo.On("GetByID", mock.Anything, mock.Anything).Return(&models.Post{ID: 1, Content: "Hello world"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Empty Content",
			body:           map[string]string{"content": "   "},
			mockSetup:      func(*MockPostRepository, *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(MockPostRepository)
			userRepo := new(MockUserRepository)
			app, _ := newPostTestApp(postRepo, userRepo)
			tt.mockSetup(postRepo, userRepo)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestCreatePost_UnknownAuthor(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	app, _ := newPostTestApp(postRepo, userRepo)

	userRepo.On("GetByID", mock.Anything, uint(1)).
		Return(nil, models.NewNotFoundError("User", uint(1)))

	body, _ := json.Marshal(map[string]string{"content": "hi"})
	req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errResp models.ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&errResp)
	assert.Equal(t, models.CodeUnknownReference, errResp.Code)
}

func TestLikePost(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	app, _ := newPostTestApp(postRepo, userRepo)

	userRepo.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1}, nil)
	postRepo.On("GetByID", mock.Anything, uint(7)).Return(&models.Post{ID: 7}, nil)
	postRepo.On("Like", mock.Anything, uint(1), uint(7)).Return(nil)
	postRepo.On("GetLikerIDs", mock.Anything, uint(7)).Return([]uint{1}, nil)

	req := httptest.NewRequest(http.MethodPost, "/posts/7/like", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var state models.LikeState
	_ = json.NewDecoder(resp.Body).Decode(&state)
	assert.Equal(t, uint(7), state.PostID)
	assert.Equal(t, []uint{1}, state.Likes)
	assert.True(t, state.Liked)
}

func TestGetPost_InvalidID(t *testing.T) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	app, _ := newPostTestApp(postRepo, userRepo)

	req := httptest.NewRequest(http.MethodGet, "/posts/abc", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
