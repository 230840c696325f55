package mocks

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/stretchr/testify/mock"
)

// PostUsecase is a mock type for domain.PostUsecase
type PostUsecase struct {
	mock.Mock
}

func (m *PostUsecase) Fetch(ctx context.Context, q domain.PostQuery) ([]domain.Post, string, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Post), args.String(1), args.Error(2)
}

func (m *PostUsecase) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Post), args.Error(1)
}

func (m *PostUsecase) Store(ctx context.Context, actorID int64, p *domain.Post) error {
	args := m.Called(ctx, actorID, p)
	return args.Error(0)
}

func (m *PostUsecase) Update(ctx context.Context, actorID int64, p *domain.Post) error {
	args := m.Called(ctx, actorID, p)
	return args.Error(0)
}

func (m *PostUsecase) Delete(ctx context.Context, actorID int64, id int64) error {
	args := m.Called(ctx, actorID, id)
	return args.Error(0)
}

func (m *PostUsecase) InitBloomFilter(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// ReactionUsecase is a mock type for domain.ReactionUsecase
type ReactionUsecase struct {
	mock.Mock
}

func (m *ReactionUsecase) Like(ctx context.Context, actorID, postID int64) (domain.LikeResult, error) {
	args := m.Called(ctx, actorID, postID)
	return args.Get(0).(domain.LikeResult), args.Error(1)
}

func (m *ReactionUsecase) Unlike(ctx context.Context, actorID, postID int64) (domain.LikeResult, error) {
	args := m.Called(ctx, actorID, postID)
	return args.Get(0).(domain.LikeResult), args.Error(1)
}

func (m *ReactionUsecase) IsLiked(ctx context.Context, actorID, postID int64) (bool, error) {
	args := m.Called(ctx, actorID, postID)
	return args.Bool(0), args.Error(1)
}
