// Package models contains data structures for the application's domain models.
package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Friendship is a single undirected edge in the social graph. Each unordered
// user pair is stored exactly once with UserAID < UserBID, so the relation is
// symmetric by construction: there is no second row that could drift out of
// sync, and no directed half-edge can exist.
type Friendship struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserAID   uint      `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"user_a_id"`
	UserBID   uint      `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"user_b_id"`
	CreatedAt time.Time `json:"created_at"`

	UserA User `gorm:"foreignKey:UserAID" json:"-"`
	UserB User `gorm:"foreignKey:UserBID" json:"-"`
}

// TableName specifies the table name for GORM
func (Friendship) TableName() string {
	return "friendships"
}

// ErrSelfFriendship is returned when both sides of an edge are the same user.
var ErrSelfFriendship = errors.New("friendship requires two distinct users")

// BeforeCreate normalizes the pair ordering and rejects self-loops.
func (f *Friendship) BeforeCreate(_ *gorm.DB) error {
	if f.UserAID == f.UserBID {
		return ErrSelfFriendship
	}
	if f.UserAID > f.UserBID {
		f.UserAID, f.UserBID = f.UserBID, f.UserAID
	}
	return nil
}
