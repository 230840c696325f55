package reaction_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain/mocks"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/authz"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/usecase/reaction"
)

func newFixture() (*mocks.LikeRepository, *mocks.PostRepository, *mocks.PostCache, *mocks.NotifyWorker, *reaction.Service) {
	likeRepo := new(mocks.LikeRepository)
	postRepo := new(mocks.PostRepository)
	cache := new(mocks.PostCache)
	notifier := new(mocks.NotifyWorker)
	svc := reaction.NewService(likeRepo, postRepo, cache, authz.NewGate(), notifier)
	return likeRepo, postRepo, cache, notifier, svc
}

func TestLike_FirstTime_NotifiesAuthorOnce(t *testing.T) {
	likeRepo, postRepo, cache, notifier, svc := newFixture()

	post := domain.Post{ID: 7, User: domain.User{ID: 2}, Likes: 3}
	postRepo.On("GetByID", mock.Anything, int64(7)).Return(post, nil)
	likeRepo.On("Insert", mock.Anything, mock.MatchedBy(func(l domain.Like) bool {
		return l.PostID == 7 && l.UserID == 1
	})).Return(true, nil)
	postRepo.On("AddLikes", mock.Anything, int64(7), int64(1)).Return(nil)
	cache.On("AddUserLikedPost", mock.Anything, int64(1), int64(7)).Return(nil)
	notifier.On("Send", mock.MatchedBy(func(n domain.Notification) bool {
		return n.RecipientID == 2 && n.ActorID == 1 && n.Verb == domain.VerbLikedPost && n.TargetID == 7
	})).Once()

	res, err := svc.Like(context.Background(), 1, 7)

	assert.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, int64(4), res.Likes)
	notifier.AssertNumberOfCalls(t, "Send", 1)
}

func TestLike_Repeat_IsNoOpWithoutNotification(t *testing.T) {
	likeRepo, postRepo, _, notifier, svc := newFixture()

	post := domain.Post{ID: 7, User: domain.User{ID: 2}, Likes: 4}
	postRepo.On("GetByID", mock.Anything, int64(7)).Return(post, nil)
	likeRepo.On("Insert", mock.Anything, mock.Anything).Return(false, nil)

	res, err := svc.Like(context.Background(), 1, 7)

	assert.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Equal(t, int64(4), res.Likes)
	notifier.AssertNotCalled(t, "Send", mock.Anything)
	postRepo.AssertNotCalled(t, "AddLikes", mock.Anything, mock.Anything, mock.Anything)
}

func TestLike_OwnPost_NoNotification(t *testing.T) {
	likeRepo, postRepo, cache, notifier, svc := newFixture()

	post := domain.Post{ID: 7, User: domain.User{ID: 1}, Likes: 0}
	postRepo.On("GetByID", mock.Anything, int64(7)).Return(post, nil)
	likeRepo.On("Insert", mock.Anything, mock.Anything).Return(true, nil)
	postRepo.On("AddLikes", mock.Anything, int64(7), int64(1)).Return(nil)
	cache.On("AddUserLikedPost", mock.Anything, int64(1), int64(7)).Return(nil)

	res, err := svc.Like(context.Background(), 1, 7)

	assert.NoError(t, err)
	assert.True(t, res.Changed)
	notifier.AssertNotCalled(t, "Send", mock.Anything)
}

func TestLike_MissingPost(t *testing.T) {
	likeRepo, postRepo, _, _, svc := newFixture()

	postRepo.On("GetByID", mock.Anything, int64(404)).Return(domain.Post{}, domain.ErrNotFound)

	_, err := svc.Like(context.Background(), 1, 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	likeRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestLike_Anonymous(t *testing.T) {
	_, postRepo, _, _, svc := newFixture()

	_, err := svc.Like(context.Background(), 0, 7)

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	postRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUnlike_RemovesAndKeepsNotification(t *testing.T) {
	likeRepo, postRepo, cache, notifier, svc := newFixture()

	likeRepo.On("Delete", mock.Anything, domain.Like{PostID: 7, UserID: 1}).Return(true, nil)
	postRepo.On("AddLikes", mock.Anything, int64(7), int64(-1)).Return(nil)
	cache.On("RemoveUserLikedPost", mock.Anything, int64(1), int64(7)).Return(nil)

	res, err := svc.Unlike(context.Background(), 1, 7)

	assert.NoError(t, err)
	assert.True(t, res.Changed)
	notifier.AssertNotCalled(t, "Send", mock.Anything)
}

func TestUnlike_Missing_IsNoOp(t *testing.T) {
	likeRepo, postRepo, _, _, svc := newFixture()

	likeRepo.On("Delete", mock.Anything, domain.Like{PostID: 7, UserID: 1}).Return(false, nil)

	res, err := svc.Unlike(context.Background(), 1, 7)

	assert.NoError(t, err)
	assert.False(t, res.Changed)
	postRepo.AssertNotCalled(t, "AddLikes", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnlikeThenLike_NotifiesAgain(t *testing.T) {
	likeRepo, postRepo, cache, notifier, svc := newFixture()

	post := domain.Post{ID: 7, User: domain.User{ID: 2}, Likes: 1}
	postRepo.On("GetByID", mock.Anything, int64(7)).Return(post, nil)
	likeRepo.On("Delete", mock.Anything, mock.Anything).Return(true, nil)
	likeRepo.On("Insert", mock.Anything, mock.Anything).Return(true, nil)
	postRepo.On("AddLikes", mock.Anything, int64(7), mock.Anything).Return(nil)
	cache.On("AddUserLikedPost", mock.Anything, int64(1), int64(7)).Return(nil)
	cache.On("RemoveUserLikedPost", mock.Anything, int64(1), int64(7)).Return(nil)
	notifier.On("Send", mock.Anything)

	_, err := svc.Unlike(context.Background(), 1, 7)
	assert.NoError(t, err)

	_, err = svc.Like(context.Background(), 1, 7)
	assert.NoError(t, err)

	notifier.AssertNumberOfCalls(t, "Send", 1)
}

func TestIsLiked_CacheHit(t *testing.T) {
	likeRepo, _, cache, _, svc := newFixture()

	cache.On("IsLikedBatch", mock.Anything, int64(1), []int64{7}).
		Return(map[int64]bool{7: true}, nil)

	liked, err := svc.IsLiked(context.Background(), 1, 7)

	assert.NoError(t, err)
	assert.True(t, liked)
	likeRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestIsLiked_CacheMissFallsBackToStore(t *testing.T) {
	likeRepo, _, cache, _, svc := newFixture()

	cache.On("IsLikedBatch", mock.Anything, int64(1), []int64{7}).
		Return(nil, domain.ErrCacheMiss)
	likeRepo.On("Exists", mock.Anything, domain.Like{PostID: 7, UserID: 1}).Return(true, nil)
	likeRepo.On("FetchUserLikedPosts", mock.Anything, int64(1), mock.Anything).Return([]int64{7}, nil).Maybe()
	cache.On("SetUserLikedPosts", mock.Anything, int64(1), mock.Anything).Return(nil).Maybe()

	liked, err := svc.IsLiked(context.Background(), 1, 7)

	assert.NoError(t, err)
	assert.True(t, liked)
}
