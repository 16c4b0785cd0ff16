package models

import "time"

// FeedPost is a post denormalized for display at read time. Author and
// commenter usernames are joined in when the feed is assembled, never stored
// on the post or comment rows, so usernames keep a single source of truth.
type FeedPost struct {
	ID             uint          `json:"id"`
	AuthorID       uint          `json:"author_id"`
	AuthorUsername string        `json:"author_username"`
	Content        string        `json:"content"`
	CreatedAt      time.Time     `json:"created_at"`
	Likes          []uint        `json:"likes"`
	LikeCount      int           `json:"like_count"`
	LikedByViewer  bool          `json:"liked_by_viewer"`
	CommentIDs     []uint        `json:"comments"`
	CommentDetails []FeedComment `json:"comment_details"`
}

// FeedComment is a comment enriched with its author's username.
type FeedComment struct {
	ID             uint      `json:"id"`
	PostID         uint      `json:"post_id"`
	AuthorID       uint      `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

// LikeState is the response to a like mutation: the post's full liker set
// plus whether the acting user is in it.
type LikeState struct {
	PostID    uint   `json:"post_id"`
	Likes     []uint `json:"likes"`
	LikeCount int    `json:"like_count"`
	Liked     bool   `json:"liked"`
}
