package service

import (
	"context"

	"socialbook/internal/models"
	"socialbook/internal/repository"
	"socialbook/internal/validation"
)

// PostService provides post and like business logic. Posts are immutable once
// created; likes only accumulate.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePost stores a new post for the author.
func (s *PostService) CreatePost(ctx context.Context, authorID uint, content string) (*models.Post, error) {
	if err := validation.ValidateContent(content, validation.MaxPostLen); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return nil, asUnknownReference(err, "User", authorID)
	}

	post := &models.Post{UserID: authorID, Content: content}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// GetPost returns a single post with its author, likes, and comments.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// LikePost records that the user likes the post and returns the post's
// resulting like state. Liking an already-liked post is a no-op.
func (s *PostService) LikePost(ctx context.Context, postID, userID uint) (*models.LikeState, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, asUnknownReference(err, "User", userID)
	}
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, asUnknownReference(err, "Post", postID)
	}

	if err := s.postRepo.Like(ctx, userID, postID); err != nil {
		return nil, err
	}

	likers, err := s.postRepo.GetLikerIDs(ctx, postID)
	if err != nil {
		return nil, err
	}
	if likers == nil {
		likers = []uint{}
	}

	liked := false
	for _, id := range likers {
		if id == userID {
			liked = true
			break
		}
	}

	return &models.LikeState{
		PostID:    postID,
		Likes:     likers,
		LikeCount: len(likers),
		Liked:     liked,
	}, nil
}
