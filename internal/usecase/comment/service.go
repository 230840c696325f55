package comment

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/repository"
)

type service struct {
	commentRepo domain.CommentRepository
	postRepo    domain.PostRepository
	userRepo    domain.UserRepository
	bloomRepo   domain.BloomRepository
	gate        domain.Authorizer
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, postRepo domain.PostRepository, userRepo domain.UserRepository, bloomRepo domain.BloomRepository, gate domain.Authorizer) *service {
	return &service{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		bloomRepo:   bloomRepo,
		gate:        gate,
	}
}

func (s *service) mustExists(ctx context.Context, postID int64) error {
	exists, err := s.bloomRepo.Exists(ctx, postID)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says post %d does not exist", postID)
		return domain.ErrNotFound
	}

	return nil
}

func (s *service) Create(ctx context.Context, actorID int64, c *domain.Comment) error {
	if err := s.gate.Authorize(actorID, domain.ActionCreate, nil); err != nil {
		return err
	}

	if err := s.mustExists(ctx, c.PostID); err != nil {
		return err
	}
	// the filter only proves absence, confirm the parent really exists
	if _, err := s.postRepo.GetByID(ctx, c.PostID); err != nil {
		return err
	}

	c.UserID = actorID
	c.CreatedAt = time.Now()
	return s.commentRepo.Store(ctx, c)
}

func (s *service) Update(ctx context.Context, actorID int64, id int64, content string) (domain.Comment, error) {
	existing, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}

	if err := s.gate.Authorize(actorID, domain.ActionUpdate, *existing); err != nil {
		return domain.Comment{}, err
	}

	existing.Content = content
	if err := s.commentRepo.Update(ctx, existing); err != nil {
		return domain.Comment{}, err
	}
	return *existing, nil
}

func (s *service) Delete(ctx context.Context, actorID int64, id int64) error {
	existing, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.gate.Authorize(actorID, domain.ActionDelete, *existing); err != nil {
		return err
	}

	return s.commentRepo.Delete(ctx, id)
}

func (s *service) FetchByPost(ctx context.Context, postID int64, cursor string, limit int64) ([]*domain.Comment, string, error) {
	if err := s.mustExists(ctx, postID); err != nil {
		return nil, "", err
	}

	res, err := s.commentRepo.FetchByPost(ctx, postID, cursor, limit)
	if err != nil {
		return nil, "", err
	}
	if len(res) == 0 {
		return []*domain.Comment{}, "", nil
	}

	if err := s.fillUserDetails(ctx, res); err != nil {
		logrus.Warnf("failed to fill comment authors: %v", err)
	}

	return res, repository.EncodeCursor(res[len(res)-1].CreatedAt), nil
}

func (s *service) fillUserDetails(ctx context.Context, comments []*domain.Comment) error {
	userIDs := make([]int64, 0, len(comments))
	existMap := make(map[int64]bool)
	for _, c := range comments {
		if !existMap[c.UserID] {
			userIDs = append(userIDs, c.UserID)
			existMap[c.UserID] = true
		}
	}

	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return err
	}

	userMap := make(map[int64]domain.User)
	for _, u := range users {
		u.Password = ""
		userMap[u.ID] = u
	}

	for _, c := range comments {
		if u, ok := userMap[c.UserID]; ok {
			user := u
			c.User = &user
		}
	}
	return nil
}
