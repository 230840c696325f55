package follow

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
)

type service struct {
	followRepo domain.FollowRepository
	userRepo   domain.UserRepository
	gate       domain.Authorizer
}

var _ domain.FollowUsecase = (*service)(nil)

func NewService(followRepo domain.FollowRepository, userRepo domain.UserRepository, gate domain.Authorizer) *service {
	return &service{
		followRepo: followRepo,
		userRepo:   userRepo,
		gate:       gate,
	}
}

// Follow adds the edge actor -> target. Adding an edge that already
// exists is a no-op, the store absorbs the duplicate.
func (s *service) Follow(ctx context.Context, actorID, targetID int64) error {
	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	if err := s.gate.Authorize(actorID, domain.ActionFollow, target); err != nil {
		return err
	}

	_, err = s.followRepo.AddEdge(ctx, actorID, targetID)
	return err
}

// Unfollow removes the edge if present, removing a missing edge is a
// no-op, not an error.
func (s *service) Unfollow(ctx context.Context, actorID, targetID int64) error {
	if err := s.gate.Authorize(actorID, domain.ActionFollow, nil); err != nil {
		return err
	}

	_, err := s.followRepo.RemoveEdge(ctx, actorID, targetID)
	return err
}

func (s *service) IsFollowing(ctx context.Context, actorID, targetID int64) (bool, error) {
	return s.followRepo.Exists(ctx, actorID, targetID)
}

func (s *service) Following(ctx context.Context, userID int64) ([]domain.User, error) {
	ids, err := s.followRepo.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.loadUsers(ctx, ids)
}

func (s *service) Followers(ctx context.Context, userID int64) ([]domain.User, error) {
	ids, err := s.followRepo.FollowerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.loadUsers(ctx, ids)
}

func (s *service) loadUsers(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}
