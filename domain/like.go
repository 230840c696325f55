package domain

import (
	"context"
	"time"
)

// Like is representing a like record. The (UserID, PostID) pair is the
// identity of the record, no duplicate likes can exist.
type Like struct {
	PostID    int64
	UserID    int64
	CreatedAt time.Time
}

// LikeResult reports the outcome of a like or unlike request.
// Changed is false when the request was an idempotent no-op.
type LikeResult struct {
	Changed bool  `json:"is_changed"`
	Likes   int64 `json:"likes"`
}

// LikeRepository defines the data access contract for like records.
// Insert relies on the unique (user_id, post_id) index of the store, so
// two concurrent identical requests race safely: exactly one row wins.
type LikeRepository interface {
	// Insert creates the like record. Returns false when the record
	// already existed, the duplicate is absorbed, not an error.
	Insert(ctx context.Context, l Like) (bool, error)

	// Delete removes the like record. Returns false when there was
	// nothing to remove.
	Delete(ctx context.Context, l Like) (bool, error)

	// Exists reports whether the user has liked the post.
	Exists(ctx context.Context, l Like) (bool, error)

	// CountByPost returns the number of likes of a post.
	CountByPost(ctx context.Context, postID int64) (int64, error)

	// FetchUserLikedPosts returns the most recently liked post IDs of a
	// user, newest first, at most limit entries.
	FetchUserLikedPosts(ctx context.Context, userID int64, limit int64) ([]int64, error)
}

// ReactionUsecase defines the business logic contract for likes.
// A first-time like on someone else's post fans out one notification to
// the post author, repeats never do.
type ReactionUsecase interface {
	// Like records actorID liking postID.
	// Returns ErrNotFound when the post is absent.
	// Result.Changed is false when the post was already liked.
	Like(ctx context.Context, actorID, postID int64) (LikeResult, error)

	// Unlike removes the like record if present. Notifications already
	// emitted are never retracted.
	Unlike(ctx context.Context, actorID, postID int64) (LikeResult, error)

	// IsLiked reports whether actorID has liked postID.
	IsLiked(ctx context.Context, actorID, postID int64) (bool, error)
}
