// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"socialbook/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FriendRepository defines persistence operations over the social graph.
type FriendRepository interface {
	Add(ctx context.Context, userID, friendID uint) error
	AreFriends(ctx context.Context, userID, friendID uint) (bool, error)
	GetFriends(ctx context.Context, userID uint) ([]models.User, error)
	GetFriendIDs(ctx context.Context, userID uint) ([]uint, error)
}

type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new friend repository
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

// Add inserts the undirected edge (userID, friendID). The BeforeCreate hook
// normalizes pair ordering and the composite unique index plus ON CONFLICT DO
// NOTHING make the insert idempotent even under concurrent duplicate requests.
func (r *friendRepository) Add(ctx context.Context, userID, friendID uint) error {
	friendship := &models.Friendship{UserAID: userID, UserBID: friendID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_a_id"}, {Name: "user_b_id"}},
			DoNothing: true,
		}).
		Create(friendship).Error
	if err != nil {
		if errors.Is(err, models.ErrSelfFriendship) {
			return models.NewValidationError("Cannot add yourself as a friend")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *friendRepository) AreFriends(ctx context.Context, userID, friendID uint) (bool, error) {
	a, b := userID, friendID
	if a > b {
		a, b = b, a
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Friendship{}).
		Where("user_a_id = ? AND user_b_id = ?", a, b).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// GetFriends returns the user's friends ordered by id for reproducible output.
func (r *friendRepository) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN friendships f ON (users.id = f.user_a_id OR users.id = f.user_b_id)").
		Where("(f.user_a_id = ? OR f.user_b_id = ?) AND users.id != ?", userID, userID, userID).
		Order("users.id ASC").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// GetFriendIDs returns just the friend ids, ordered ascending.
func (r *friendRepository) GetFriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Friendship{}).
		Select("CASE WHEN user_a_id = ? THEN user_b_id ELSE user_a_id END", userID).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Order("1 ASC").
		Scan(&ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}
