package service

import (
	"context"
	"errors"
	"testing"

	"socialbook/internal/models"
)

type userRepoStub struct {
	getByIDFn         func(context.Context, uint) (*models.User, error)
	getByUsernameFn   func(context.Context, string) (*models.User, error)
	getByEmailFn      func(context.Context, string) (*models.User, error)
	createFn          func(context.Context, *models.User) error
	updateFn          func(context.Context, *models.User) error
	listFn            func(context.Context, int, int) ([]models.User, error)
	listSuggestionsFn func(context.Context, uint, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) ListSuggestions(ctx context.Context, viewerID uint, limit int) ([]models.User, error) {
	return s.listSuggestionsFn(ctx, viewerID, limit)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:         func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByUsernameFn:   func(context.Context, string) (*models.User, error) { return nil, nil },
		getByEmailFn:      func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:          func(context.Context, *models.User) error { return nil },
		updateFn:          func(context.Context, *models.User) error { return nil },
		listFn:            func(context.Context, int, int) ([]models.User, error) { return nil, nil },
		listSuggestionsFn: func(context.Context, uint, int) ([]models.User, error) { return nil, nil },
	}
}

type friendRepoStub struct {
	addFn          func(context.Context, uint, uint) error
	areFriendsFn   func(context.Context, uint, uint) (bool, error)
	getFriendsFn   func(context.Context, uint) ([]models.User, error)
	getFriendIDsFn func(context.Context, uint) ([]uint, error)
}

func (s *friendRepoStub) Add(ctx context.Context, userID, friendID uint) error {
	return s.addFn(ctx, userID, friendID)
}
func (s *friendRepoStub) AreFriends(ctx context.Context, userID, friendID uint) (bool, error) {
	return s.areFriendsFn(ctx, userID, friendID)
}
func (s *friendRepoStub) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.getFriendsFn(ctx, userID)
}
func (s *friendRepoStub) GetFriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.getFriendIDsFn(ctx, userID)
}

func noopFriendRepo() *friendRepoStub {
	return &friendRepoStub{
		addFn:          func(context.Context, uint, uint) error { return nil },
		areFriendsFn:   func(context.Context, uint, uint) (bool, error) { return false, nil },
		getFriendsFn:   func(context.Context, uint) ([]models.User, error) { return nil, nil },
		getFriendIDsFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
	}
}

type postRepoStub struct {
	createFn          func(context.Context, *models.Post) error
	getByIDFn         func(context.Context, uint) (*models.Post, error)
	listByAuthorIDsFn func(context.Context, []uint) ([]models.Post, error)
	countByAuthorFn   func(context.Context, uint) (int64, error)
	likeFn            func(context.Context, uint, uint) error
	getLikerIDsFn     func(context.Context, uint) ([]uint, error)
	isLikedFn         func(context.Context, uint, uint) (bool, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) ListByAuthorIDs(ctx context.Context, authorIDs []uint) ([]models.Post, error) {
	return s.listByAuthorIDsFn(ctx, authorIDs)
}
func (s *postRepoStub) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	return s.countByAuthorFn(ctx, authorID)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) error {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) GetLikerIDs(ctx context.Context, postID uint) ([]uint, error) {
	return s.getLikerIDsFn(ctx, postID)
}
func (s *postRepoStub) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:          func(context.Context, *models.Post) error { return nil },
		getByIDFn:         func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		listByAuthorIDsFn: func(context.Context, []uint) ([]models.Post, error) { return nil, nil },
		countByAuthorFn:   func(context.Context, uint) (int64, error) { return 0, nil },
		likeFn:            func(context.Context, uint, uint) error { return nil },
		getLikerIDsFn:     func(context.Context, uint) ([]uint, error) { return nil, nil },
		isLikedFn:         func(context.Context, uint, uint) (bool, error) { return false, nil },
	}
}

type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint) ([]models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(context.Context, *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByPostFn: func(context.Context, uint) ([]models.Comment, error) { return nil, nil },
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != code {
		t.Fatalf("expected app error with code %s, got %#v", code, err)
	}
}
