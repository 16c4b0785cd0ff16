package service

import (
	"context"

	"socialbook/internal/models"
	"socialbook/internal/repository"
	"socialbook/internal/validation"
)

// CommentService provides comment business logic. Comments are append-only
// and immutable.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, userRepo repository.UserRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// AddComment appends a comment to the post.
func (s *CommentService) AddComment(ctx context.Context, postID, authorID uint, content string) (*models.Comment, error) {
	if err := validation.ValidateContent(content, validation.MaxCommentLen); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return nil, asUnknownReference(err, "User", authorID)
	}
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, asUnknownReference(err, "Post", postID)
	}

	comment := &models.Comment{PostID: postID, UserID: authorID, Content: content}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns the post's comments oldest first.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}
