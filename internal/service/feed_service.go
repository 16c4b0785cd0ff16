package service

import (
	"context"
	"time"

	"socialbook/internal/models"
	"socialbook/internal/observability"
	"socialbook/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// FeedService assembles viewer feeds. The feed is computed from the stores on
// every call and never cached, so two calls over unchanged state return
// identical results.
type FeedService struct {
	postRepo   repository.PostRepository
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
}

// NewFeedService returns a new FeedService.
func NewFeedService(postRepo repository.PostRepository, friendRepo repository.FriendRepository, userRepo repository.UserRepository) *FeedService {
	return &FeedService{
		postRepo:   postRepo,
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

// ComputeFeed returns the viewer's feed: posts authored by the viewer or any
// of the viewer's friends, newest first, each enriched with author username,
// liker ids, and ordered comments.
func (s *FeedService) ComputeFeed(ctx context.Context, viewerID uint) ([]models.FeedPost, error) {
	ctx, span := observability.Tracer.Start(ctx, "feed.compute")
	defer span.End()
	span.SetAttributes(attribute.Int64("feed.viewer_id", int64(viewerID)))

	start := time.Now()
	defer func() {
		observability.FeedAssemblyDuration.Observe(time.Since(start).Seconds())
	}()

	if _, err := s.userRepo.GetByID(ctx, viewerID); err != nil {
		return nil, err
	}

	friendIDs, err := s.friendRepo.GetFriendIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	authorIDs := append([]uint{viewerID}, friendIDs...)

	posts, err := s.postRepo.ListByAuthorIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	feed := make([]models.FeedPost, 0, len(posts))
	for i := range posts {
		feed = append(feed, buildFeedPost(&posts[i], viewerID))
	}

	span.SetAttributes(attribute.Int("feed.posts", len(feed)))
	observability.FeedPostsReturned.Observe(float64(len(feed)))
	return feed, nil
}

// buildFeedPost denormalizes a preloaded post for the viewer.
func buildFeedPost(post *models.Post, viewerID uint) models.FeedPost {
	likes := make([]uint, 0, len(post.Likes))
	liked := false
	for _, like := range post.Likes {
		likes = append(likes, like.UserID)
		if like.UserID == viewerID {
			liked = true
		}
	}

	commentIDs := make([]uint, 0, len(post.Comments))
	details := make([]models.FeedComment, 0, len(post.Comments))
	for _, c := range post.Comments {
		commentIDs = append(commentIDs, c.ID)
		details = append(details, models.FeedComment{
			ID:             c.ID,
			PostID:         c.PostID,
			AuthorID:       c.UserID,
			AuthorUsername: c.User.Username,
			Content:        c.Content,
			CreatedAt:      c.CreatedAt,
		})
	}

	return models.FeedPost{
		ID:             post.ID,
		AuthorID:       post.UserID,
		AuthorUsername: post.User.Username,
		Content:        post.Content,
		CreatedAt:      post.CreatedAt,
		Likes:          likes,
		LikeCount:      len(likes),
		LikedByViewer:  liked,
		CommentIDs:     commentIDs,
		CommentDetails: details,
	}
}
