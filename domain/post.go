package domain

import (
	"context"
	"time"
)

// Post is representing the Post data struct
type Post struct {
	ID        int64     // Unique identifier for the post
	Title     string    // Post title
	Content   string    // Post body content
	User      User      // Author information
	UpdatedAt time.Time // Last update timestamp
	CreatedAt time.Time // Creation timestamp
	Likes     int64     // Number of likes
}

// PostQuery carries the listing parameters for Fetch.
// Zero values mean "no constraint".
type PostQuery struct {
	Cursor   string // encoded created_at cursor, empty for the first page
	Num      int64  // page size
	Search   string // substring match over title and content
	AuthorID int64  // restrict to a single author
	OrderBy  string // "created_at" (default) or "title"
}

// PostDBRepository defines the database-only contract for post persistence.
type PostDBRepository interface {
	// Fetch retrieves a page of posts ordered by created_at descending
	// (or by title when the query asks for it).
	Fetch(ctx context.Context, q PostQuery) ([]Post, error)

	// FetchByAuthors retrieves a page of posts authored by any of the
	// given users, ordered by created_at descending. Used by the feed.
	FetchByAuthors(ctx context.Context, authorIDs []int64, cursor string, num int64) ([]Post, error)

	// GetByID retrieves a single post by its ID.
	// Returns ErrNotFound if the post doesn't exist.
	GetByID(ctx context.Context, id int64) (Post, error)

	// Store creates a new post and backfills ID and timestamps.
	Store(ctx context.Context, p *Post) error

	// Update modifies title and content of an existing post.
	// Returns ErrNotFound if the post doesn't exist.
	Update(ctx context.Context, p *Post) error

	// Delete removes a post together with its comments and likes in one
	// transaction. Notifications that reference the post are kept, they
	// are historical records.
	Delete(ctx context.Context, id int64) error

	// AddLikes bumps the denormalized like counter of a post by delta.
	// Returns ErrNotFound if the post doesn't exist.
	AddLikes(ctx context.Context, id int64, delta int64) error

	// FetchIDs pages over all post IDs, used to seed the bloom filter.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

// PostRepository is the contract consumed by the usecase layer. It has the
// same operations as PostDBRepository but implementations may serve reads
// from cache.
type PostRepository interface {
	PostDBRepository
}

// PostCache defines the cache contract for posts and their like counters.
type PostCache interface {
	GetPost(ctx context.Context, id int64) (Post, error)
	SetPost(ctx context.Context, p *Post) error
	DeletePost(ctx context.Context, id int64) error

	// GetLikeCount returns ErrCacheMiss when the counter is not cached.
	GetLikeCount(ctx context.Context, postID int64) (int64, error)
	SetLikeCount(ctx context.Context, postID int64, likes int64) error
	IncrLikeCount(ctx context.Context, postID int64, delta int64) error

	// IsLikedBatch reports, for each post ID, whether the user has liked
	// it. Returns ErrCacheMiss when the user's liked set is not cached.
	IsLikedBatch(ctx context.Context, userID int64, postIDs []int64) (map[int64]bool, error)
	SetUserLikedPosts(ctx context.Context, userID int64, postIDs []int64) error
	AddUserLikedPost(ctx context.Context, userID, postID int64) error
	RemoveUserLikedPost(ctx context.Context, userID, postID int64) error
}

// PostUsecase defines the business logic contract for post operations.
type PostUsecase interface {
	Fetch(ctx context.Context, q PostQuery) ([]Post, string, error)
	GetByID(ctx context.Context, id int64) (Post, error)

	// Store creates a post authored by actorID.
	// Returns ErrUnauthenticated when actorID is zero.
	Store(ctx context.Context, actorID int64, p *Post) error

	// Update modifies a post. Only the author may update it, anyone else
	// gets ErrForbidden.
	Update(ctx context.Context, actorID int64, p *Post) error

	// Delete removes a post and cascades to its comments and likes.
	// Only the author may delete it.
	Delete(ctx context.Context, actorID int64, id int64) error

	InitBloomFilter(ctx context.Context) error
}
