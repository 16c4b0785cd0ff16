package service

import (
	"context"
	"testing"

	"socialbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendService_AddFriend_Self(t *testing.T) {
	t.Parallel()

	svc := NewFriendService(noopFriendRepo(), noopUserRepo())
	_, err := svc.AddFriend(context.Background(), 3, 3)
	assertAppErrorCode(t, err, models.CodeValidation)
}

func TestFriendService_AddFriend_UnknownTarget(t *testing.T) {
	t.Parallel()

	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		if id == 99 {
			return nil, models.NewNotFoundError("User", id)
		}
		return &models.User{ID: id}, nil
	}
	svc := NewFriendService(noopFriendRepo(), users)

	_, err := svc.AddFriend(context.Background(), 1, 99)
	assertAppErrorCode(t, err, models.CodeUnknownReference)
}

func TestFriendService_AddFriend_ReturnsFriendIDs(t *testing.T) {
	t.Parallel()

	friends := noopFriendRepo()
	var addedA, addedB uint
	friends.addFn = func(_ context.Context, a, b uint) error {
		addedA, addedB = a, b
		return nil
	}
	friends.getFriendIDsFn = func(context.Context, uint) ([]uint, error) {
		return []uint{2}, nil
	}
	svc := NewFriendService(friends, noopUserRepo())

	ids, err := svc.AddFriend(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(1), addedA)
	assert.Equal(t, uint(2), addedB)
	assert.Equal(t, []uint{2}, ids)
}

func TestFriendService_Friends_EmptyIsNotNil(t *testing.T) {
	t.Parallel()

	svc := NewFriendService(noopFriendRepo(), noopUserRepo())
	friends, err := svc.Friends(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, friends)
	assert.Empty(t, friends)
}

func TestFriendService_Friends_UnknownUser(t *testing.T) {
	t.Parallel()

	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", id)
	}
	svc := NewFriendService(noopFriendRepo(), users)

	_, err := svc.Friends(context.Background(), 42)
	assertAppErrorCode(t, err, models.CodeNotFound)
}
