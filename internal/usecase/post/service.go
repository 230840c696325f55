package post

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/repository"
)

const bloomSeedPageSize = 1000

type Service struct {
	postRepo  domain.PostRepository
	bloomRepo domain.BloomRepository
	gate      domain.Authorizer
}

var _ domain.PostUsecase = (*Service)(nil)

// NewService will create a new post service object
func NewService(p domain.PostRepository, bloom domain.BloomRepository, gate domain.Authorizer) *Service {
	return &Service{
		postRepo:  p,
		bloomRepo: bloom,
		gate:      gate,
	}
}

// mustExists rejects IDs the bloom filter knows to be absent, so that
// reads for deleted or made-up posts don't reach the store.
func (s *Service) mustExists(ctx context.Context, id int64) error {
	exists, err := s.bloomRepo.Exists(ctx, id)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says post %d does not exist", id)
		return domain.ErrNotFound
	}

	return nil
}

func (s *Service) Fetch(ctx context.Context, q domain.PostQuery) ([]domain.Post, string, error) {
	res, err := s.postRepo.Fetch(ctx, q)
	if err != nil {
		return nil, "", err
	}

	// cursor pagination only holds for the created_at ordering
	nextCursor := ""
	if len(res) > 0 && q.OrderBy != "title" {
		nextCursor = repository.EncodeCursor(res[len(res)-1].CreatedAt)
	}
	return res, nextCursor, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	if err := s.mustExists(ctx, id); err != nil {
		return domain.Post{}, err
	}

	return s.postRepo.GetByID(ctx, id)
}

func (s *Service) Store(ctx context.Context, actorID int64, p *domain.Post) error {
	if err := s.gate.Authorize(actorID, domain.ActionCreate, nil); err != nil {
		return err
	}

	p.User = domain.User{ID: actorID}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.postRepo.Store(ctx, p); err != nil {
		return err
	}

	if err := s.bloomRepo.Add(ctx, p.ID); err != nil {
		logrus.Warnf("failed to add post %d to bloom filter: %v", p.ID, err)
	}
	return nil
}

func (s *Service) Update(ctx context.Context, actorID int64, p *domain.Post) error {
	existing, err := s.postRepo.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}

	if err := s.gate.Authorize(actorID, domain.ActionUpdate, existing); err != nil {
		return err
	}

	p.User = existing.User
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()
	return s.postRepo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, actorID int64, id int64) error {
	existing, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.gate.Authorize(actorID, domain.ActionDelete, existing); err != nil {
		return err
	}

	return s.postRepo.Delete(ctx, id)
}

// InitBloomFilter seeds the filter with every existing post ID. The
// filter has no deletes, stale positives are caught by the store.
func (s *Service) InitBloomFilter(ctx context.Context) error {
	var cursor int64
	for {
		ids, err := s.postRepo.FetchIDs(ctx, cursor, bloomSeedPageSize)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}

		cursor = ids[len(ids)-1]
	}
}
