package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain/mocks"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/repository"
)

func TestGetByID_CacheHitOverlaysLikeCounter(t *testing.T) {
	db := new(mocks.PostRepository)
	cache := new(mocks.PostCache)
	userRepo := new(mocks.UserRepository)
	likeRepo := new(mocks.LikeRepository)
	repo := repository.NewPostRepository(db, cache, userRepo, likeRepo)

	cache.On("GetPost", mock.Anything, int64(7)).
		Return(domain.Post{ID: 7, User: domain.User{ID: 1}, Likes: 3}, nil)
	cache.On("GetLikeCount", mock.Anything, int64(7)).Return(int64(5), nil)

	p, err := repo.GetByID(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), p.Likes)
	db.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGetByID_CacheMissRebuildsFromStore(t *testing.T) {
	db := new(mocks.PostRepository)
	cache := new(mocks.PostCache)
	userRepo := new(mocks.UserRepository)
	likeRepo := new(mocks.LikeRepository)
	repo := repository.NewPostRepository(db, cache, userRepo, likeRepo)

	cache.On("GetPost", mock.Anything, int64(7)).Return(domain.Post{}, domain.ErrCacheMiss)
	db.On("GetByID", mock.Anything, int64(7)).
		Return(domain.Post{ID: 7, User: domain.User{ID: 1}, Likes: 2}, nil)
	userRepo.On("GetByID", mock.Anything, int64(1)).
		Return(domain.User{ID: 1, Username: "alice"}, nil)
	cache.On("SetPost", mock.Anything, mock.Anything).Return(nil)
	cache.On("SetLikeCount", mock.Anything, int64(7), int64(2)).Return(nil)

	p, err := repo.GetByID(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, "alice", p.User.Username)
	cache.AssertCalled(t, "SetPost", mock.Anything, mock.Anything)
}

func TestGetByID_Missing(t *testing.T) {
	db := new(mocks.PostRepository)
	cache := new(mocks.PostCache)
	userRepo := new(mocks.UserRepository)
	likeRepo := new(mocks.LikeRepository)
	repo := repository.NewPostRepository(db, cache, userRepo, likeRepo)

	cache.On("GetPost", mock.Anything, int64(404)).Return(domain.Post{}, domain.ErrCacheMiss)
	db.On("GetByID", mock.Anything, int64(404)).Return(domain.Post{}, domain.ErrNotFound)

	_, err := repo.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByID_ExpiredCounterSeedsFromStore(t *testing.T) {
	db := new(mocks.PostRepository)
	cache := new(mocks.PostCache)
	userRepo := new(mocks.UserRepository)
	likeRepo := new(mocks.LikeRepository)
	repo := repository.NewPostRepository(db, cache, userRepo, likeRepo)

	cache.On("GetPost", mock.Anything, int64(7)).
		Return(domain.Post{ID: 7, User: domain.User{ID: 1}}, nil)
	cache.On("GetLikeCount", mock.Anything, int64(7)).Return(int64(0), domain.ErrCacheMiss)
	likeRepo.On("CountByPost", mock.Anything, int64(7)).Return(int64(9), nil)
	cache.On("SetLikeCount", mock.Anything, int64(7), int64(9)).Return(nil)

	p, err := repo.GetByID(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(9), p.Likes)
}

func TestFetch_FillsAuthors(t *testing.T) {
	db := new(mocks.PostRepository)
	cache := new(mocks.PostCache)
	userRepo := new(mocks.UserRepository)
	likeRepo := new(mocks.LikeRepository)
	repo := repository.NewPostRepository(db, cache, userRepo, likeRepo)

	db.On("Fetch", mock.Anything, mock.Anything).Return([]domain.Post{
		{ID: 1, User: domain.User{ID: 5}},
		{ID: 2, User: domain.User{ID: 5}},
	}, nil)
	userRepo.On("GetByIDs", mock.Anything, []int64{5}).Return([]domain.User{
		{ID: 5, Username: "alice"},
	}, nil)

	posts, err := repo.Fetch(context.Background(), domain.PostQuery{Num: 10})

	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, "alice", posts[0].User.Username)
	assert.Equal(t, "alice", posts[1].User.Username)
}

func TestAddLikes_BumpsStoreAndCache(t *testing.T) {
	db := new(mocks.PostRepository)
	cache := new(mocks.PostCache)
	userRepo := new(mocks.UserRepository)
	likeRepo := new(mocks.LikeRepository)
	repo := repository.NewPostRepository(db, cache, userRepo, likeRepo)

	db.On("AddLikes", mock.Anything, int64(7), int64(1)).Return(nil)
	cache.On("IncrLikeCount", mock.Anything, int64(7), int64(1)).Return(nil)

	err := repo.AddLikes(context.Background(), 7, 1)

	assert.NoError(t, err)
	cache.AssertExpectations(t)
}

func TestAddLikes_StoreFailureSkipsCache(t *testing.T) {
	db := new(mocks.PostRepository)
	cache := new(mocks.PostCache)
	userRepo := new(mocks.UserRepository)
	likeRepo := new(mocks.LikeRepository)
	repo := repository.NewPostRepository(db, cache, userRepo, likeRepo)

	db.On("AddLikes", mock.Anything, int64(404), int64(1)).Return(domain.ErrNotFound)

	err := repo.AddLikes(context.Background(), 404, 1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	cache.AssertNotCalled(t, "IncrLikeCount", mock.Anything, mock.Anything, mock.Anything)
}
