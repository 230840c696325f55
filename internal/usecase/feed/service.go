package feed

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/repository"
)

type service struct {
	followRepo domain.FollowRepository
	postRepo   domain.PostRepository
}

var _ domain.FeedUsecase = (*service)(nil)

func NewService(followRepo domain.FollowRepository, postRepo domain.PostRepository) *service {
	return &service{
		followRepo: followRepo,
		postRepo:   postRepo,
	}
}

// FeedFor assembles the viewer's timeline: posts authored by followed
// users, newest first. The viewer's own posts can never show up because
// no self-follow edge can exist.
func (s *service) FeedFor(ctx context.Context, viewerID int64, cursor string, limit int64) ([]domain.Post, string, error) {
	authorIDs, err := s.followRepo.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, "", err
	}
	if len(authorIDs) == 0 {
		return []domain.Post{}, "", nil
	}

	posts, err := s.postRepo.FetchByAuthors(ctx, authorIDs, cursor, limit)
	if err != nil {
		return nil, "", err
	}
	if len(posts) == 0 {
		return []domain.Post{}, "", nil
	}

	nextCursor := repository.EncodeCursor(posts[len(posts)-1].CreatedAt)
	return posts, nextCursor, nil
}
