package domain

import (
	"context"
	"time"
)

// Follow is a directed edge in the follow graph: follower -> followee.
// The (follower_id, followee_id) pair is unique, a user can follow
// another user at most once and can never follow themselves.
type Follow struct {
	FollowerID int64
	FolloweeID int64
	CreatedAt  time.Time
}

// FollowRepository defines the contract for follow edge persistence.
type FollowRepository interface {
	// AddEdge inserts the edge idempotently. Inserting an edge that is
	// already present is a no-op, it returns false without error.
	AddEdge(ctx context.Context, followerID, followeeID int64) (bool, error)

	// RemoveEdge deletes the edge if present. Removing a missing edge is
	// a no-op, it returns false without error.
	RemoveEdge(ctx context.Context, followerID, followeeID int64) (bool, error)

	// Exists reports whether follower currently follows followee.
	Exists(ctx context.Context, followerID, followeeID int64) (bool, error)

	// FollowingIDs returns the IDs of every user the given user follows.
	FollowingIDs(ctx context.Context, followerID int64) ([]int64, error)

	// FollowerIDs returns the IDs of every user following the given user.
	FollowerIDs(ctx context.Context, followeeID int64) ([]int64, error)
}

// FollowUsecase defines the business logic contract for the follow graph.
type FollowUsecase interface {
	// Follow adds a follow edge from actor to target.
	// Returns ErrInvalidOperation if actor == target.
	// Returns ErrNotFound if the target user doesn't exist.
	Follow(ctx context.Context, actorID, targetID int64) error

	// Unfollow removes the edge, a no-op when it doesn't exist.
	Unfollow(ctx context.Context, actorID, targetID int64) error

	IsFollowing(ctx context.Context, actorID, targetID int64) (bool, error)

	// Following lists the users the given user follows.
	Following(ctx context.Context, userID int64) ([]User, error)

	// Followers lists the users following the given user.
	Followers(ctx context.Context, userID int64) ([]User, error)
}
