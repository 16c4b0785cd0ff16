// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered SocialBook account.
// Identity fields (username, email, password hash) are immutable after
// registration; only Bio may change.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"unique;not null" json:"username"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Bio       string         `json:"bio"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// FriendIDs and PostCount are computed projections over the friendships
	// and posts tables. They are never persisted on the user row, which rules
	// out counter drift.
	FriendIDs []uint `gorm:"-" json:"friends"`
	PostCount int64  `gorm:"-" json:"post_count"`
}
