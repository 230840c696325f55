package domain

import "context"

// FeedUsecase derives the timeline of a viewer from the follow graph.
type FeedUsecase interface {
	// FeedFor returns the posts authored by users the viewer follows,
	// ordered by created_at descending. The viewer's own posts never
	// appear, no self-follow edge can exist.
	FeedFor(ctx context.Context, viewerID int64, cursor string, limit int64) ([]Post, string, error)
}
