package mocks

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/stretchr/testify/mock"
)

// PostRepository is a mock type for domain.PostRepository
type PostRepository struct {
	mock.Mock
}

func (m *PostRepository) Fetch(ctx context.Context, q domain.PostQuery) ([]domain.Post, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Post), args.Error(1)
}

func (m *PostRepository) FetchByAuthors(ctx context.Context, authorIDs []int64, cursor string, num int64) ([]domain.Post, error) {
	args := m.Called(ctx, authorIDs, cursor, num)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Post), args.Error(1)
}

func (m *PostRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Post), args.Error(1)
}

func (m *PostRepository) Store(ctx context.Context, p *domain.Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PostRepository) Update(ctx context.Context, p *domain.Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PostRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PostRepository) AddLikes(ctx context.Context, id int64, delta int64) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *PostRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	args := m.Called(ctx, cursor, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// PostCache is a mock type for domain.PostCache
type PostCache struct {
	mock.Mock
}

func (m *PostCache) GetPost(ctx context.Context, id int64) (domain.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Post), args.Error(1)
}

func (m *PostCache) SetPost(ctx context.Context, p *domain.Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PostCache) DeletePost(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PostCache) GetLikeCount(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PostCache) SetLikeCount(ctx context.Context, postID int64, likes int64) error {
	args := m.Called(ctx, postID, likes)
	return args.Error(0)
}

func (m *PostCache) IncrLikeCount(ctx context.Context, postID int64, delta int64) error {
	args := m.Called(ctx, postID, delta)
	return args.Error(0)
}

func (m *PostCache) IsLikedBatch(ctx context.Context, userID int64, postIDs []int64) (map[int64]bool, error) {
	args := m.Called(ctx, userID, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]bool), args.Error(1)
}

func (m *PostCache) SetUserLikedPosts(ctx context.Context, userID int64, postIDs []int64) error {
	args := m.Called(ctx, userID, postIDs)
	return args.Error(0)
}

func (m *PostCache) AddUserLikedPost(ctx context.Context, userID, postID int64) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *PostCache) RemoveUserLikedPost(ctx context.Context, userID, postID int64) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}
