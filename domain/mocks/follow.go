package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// FollowRepository is a mock type for domain.FollowRepository
type FollowRepository struct {
	mock.Mock
}

func (m *FollowRepository) AddEdge(ctx context.Context, followerID, followeeID int64) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *FollowRepository) RemoveEdge(ctx context.Context, followerID, followeeID int64) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *FollowRepository) Exists(ctx context.Context, followerID, followeeID int64) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *FollowRepository) FollowingIDs(ctx context.Context, followerID int64) ([]int64, error) {
	args := m.Called(ctx, followerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *FollowRepository) FollowerIDs(ctx context.Context, followeeID int64) ([]int64, error) {
	args := m.Called(ctx, followeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}
