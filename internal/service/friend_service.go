package service

import (
	"context"

	"socialbook/internal/models"
	"socialbook/internal/repository"
)

// FriendService provides social-graph business logic.
type FriendService struct {
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
}

// NewFriendService returns a new FriendService.
func NewFriendService(friendRepo repository.FriendRepository, userRepo repository.UserRepository) *FriendService {
	return &FriendService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

// AddFriend creates the undirected friendship between the two users. Both must
// exist; repeating the call, in either direction, changes nothing.
func (s *FriendService) AddFriend(ctx context.Context, userID, friendID uint) ([]uint, error) {
	if userID == friendID {
		return nil, models.NewValidationError("Cannot add yourself as a friend")
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, asUnknownReference(err, "User", userID)
	}
	if _, err := s.userRepo.GetByID(ctx, friendID); err != nil {
		return nil, asUnknownReference(err, "User", friendID)
	}

	if err := s.friendRepo.Add(ctx, userID, friendID); err != nil {
		return nil, err
	}

	ids, err := s.friendRepo.GetFriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []uint{}
	}
	return ids, nil
}

// AreFriends reports whether an edge exists between the two users.
func (s *FriendService) AreFriends(ctx context.Context, userID, friendID uint) (bool, error) {
	return s.friendRepo.AreFriends(ctx, userID, friendID)
}

// Friends returns the user's friends ordered by id.
func (s *FriendService) Friends(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	friends, err := s.friendRepo.GetFriends(ctx, userID)
	if err != nil {
		return nil, err
	}
	if friends == nil {
		friends = []models.User{}
	}
	return friends, nil
}

// FriendIDs returns just the ids of the user's friends.
func (s *FriendService) FriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.friendRepo.GetFriendIDs(ctx, userID)
}
