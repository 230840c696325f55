package follow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain/mocks"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/authz"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/usecase/follow"
)

func TestFollow_AddsEdge(t *testing.T) {
	followRepo := new(mocks.FollowRepository)
	userRepo := new(mocks.UserRepository)
	svc := follow.NewService(followRepo, userRepo, authz.NewGate())

	userRepo.On("GetByID", mock.Anything, int64(2)).Return(domain.User{ID: 2}, nil)
	followRepo.On("AddEdge", mock.Anything, int64(1), int64(2)).Return(true, nil)

	err := svc.Follow(context.Background(), 1, 2)

	assert.NoError(t, err)
	followRepo.AssertExpectations(t)
}

func TestFollow_Twice_IsIdempotent(t *testing.T) {
	followRepo := new(mocks.FollowRepository)
	userRepo := new(mocks.UserRepository)
	svc := follow.NewService(followRepo, userRepo, authz.NewGate())

	userRepo.On("GetByID", mock.Anything, int64(2)).Return(domain.User{ID: 2}, nil)
	followRepo.On("AddEdge", mock.Anything, int64(1), int64(2)).Return(true, nil).Once()
	followRepo.On("AddEdge", mock.Anything, int64(1), int64(2)).Return(false, nil).Once()

	assert.NoError(t, svc.Follow(context.Background(), 1, 2))
	assert.NoError(t, svc.Follow(context.Background(), 1, 2))
}

func TestFollow_Self_Rejected(t *testing.T) {
	followRepo := new(mocks.FollowRepository)
	userRepo := new(mocks.UserRepository)
	svc := follow.NewService(followRepo, userRepo, authz.NewGate())

	userRepo.On("GetByID", mock.Anything, int64(1)).Return(domain.User{ID: 1}, nil)

	err := svc.Follow(context.Background(), 1, 1)

	assert.ErrorIs(t, err, domain.ErrInvalidOperation)
	followRepo.AssertNotCalled(t, "AddEdge", mock.Anything, mock.Anything, mock.Anything)
}

func TestFollow_MissingTarget(t *testing.T) {
	followRepo := new(mocks.FollowRepository)
	userRepo := new(mocks.UserRepository)
	svc := follow.NewService(followRepo, userRepo, authz.NewGate())

	userRepo.On("GetByID", mock.Anything, int64(404)).Return(domain.User{}, domain.ErrNotFound)

	err := svc.Follow(context.Background(), 1, 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	followRepo.AssertNotCalled(t, "AddEdge", mock.Anything, mock.Anything, mock.Anything)
}

func TestFollow_Anonymous(t *testing.T) {
	followRepo := new(mocks.FollowRepository)
	userRepo := new(mocks.UserRepository)
	svc := follow.NewService(followRepo, userRepo, authz.NewGate())

	userRepo.On("GetByID", mock.Anything, int64(2)).Return(domain.User{ID: 2}, nil)

	err := svc.Follow(context.Background(), 0, 2)

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestUnfollow_MissingEdge_IsNoOp(t *testing.T) {
	followRepo := new(mocks.FollowRepository)
	userRepo := new(mocks.UserRepository)
	svc := follow.NewService(followRepo, userRepo, authz.NewGate())

	followRepo.On("RemoveEdge", mock.Anything, int64(1), int64(2)).Return(false, nil)

	assert.NoError(t, svc.Unfollow(context.Background(), 1, 2))
}

func TestFollowing_StripsPasswords(t *testing.T) {
	followRepo := new(mocks.FollowRepository)
	userRepo := new(mocks.UserRepository)
	svc := follow.NewService(followRepo, userRepo, authz.NewGate())

	followRepo.On("FollowingIDs", mock.Anything, int64(1)).Return([]int64{2, 3}, nil)
	userRepo.On("GetByIDs", mock.Anything, []int64{2, 3}).Return([]domain.User{
		{ID: 2, Username: "alice", Password: "hash"},
		{ID: 3, Username: "bob", Password: "hash"},
	}, nil)

	users, err := svc.Following(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.Password)
	}
}

func TestFollowers_Empty(t *testing.T) {
	followRepo := new(mocks.FollowRepository)
	userRepo := new(mocks.UserRepository)
	svc := follow.NewService(followRepo, userRepo, authz.NewGate())

	followRepo.On("FollowerIDs", mock.Anything, int64(1)).Return([]int64{}, nil)

	users, err := svc.Followers(context.Background(), 1)

	assert.NoError(t, err)
	assert.Empty(t, users)
	userRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}
