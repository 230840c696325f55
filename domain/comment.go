package domain

import (
	"context"
	"time"
)

// Comment domain model
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`

	// User holds the comment author details when filled
	User *User `json:"user,omitempty"`
}

// CommentUsecase defines the business logic contract for comments
type CommentUsecase interface {
	// Create stores a comment authored by actorID under its parent post.
	// Returns ErrNotFound when the parent post is absent.
	Create(ctx context.Context, actorID int64, c *Comment) error

	// Update changes the content of a comment, author only.
	Update(ctx context.Context, actorID int64, id int64, content string) (Comment, error)

	// Delete removes a comment, author only.
	Delete(ctx context.Context, actorID int64, id int64) error

	FetchByPost(ctx context.Context, postID int64, cursor string, limit int64) ([]*Comment, string, error)
}

// CommentRepository defines the data access contract for comments
type CommentRepository interface {
	Store(ctx context.Context, c *Comment) error
	Update(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Comment, error)
	// FetchByPost pages over the comments of a post, newest first
	FetchByPost(ctx context.Context, postID int64, cursor string, limit int64) ([]*Comment, error)
}
