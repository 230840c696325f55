package mocks

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/stretchr/testify/mock"
)

// LikeRepository is a mock type for domain.LikeRepository
type LikeRepository struct {
	mock.Mock
}

func (m *LikeRepository) Insert(ctx context.Context, l domain.Like) (bool, error) {
	args := m.Called(ctx, l)
	return args.Bool(0), args.Error(1)
}

func (m *LikeRepository) Delete(ctx context.Context, l domain.Like) (bool, error) {
	args := m.Called(ctx, l)
	return args.Bool(0), args.Error(1)
}

func (m *LikeRepository) Exists(ctx context.Context, l domain.Like) (bool, error) {
	args := m.Called(ctx, l)
	return args.Bool(0), args.Error(1)
}

func (m *LikeRepository) CountByPost(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *LikeRepository) FetchUserLikedPosts(ctx context.Context, userID int64, limit int64) ([]int64, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}
