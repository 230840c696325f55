package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
)

func TestGetPost_Hit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewPostCache(client)

	p := domain.Post{ID: 7, Title: "hello", User: domain.User{ID: 1}, Likes: 3}
	data, err := json.Marshal(p)
	assert.NoError(t, err)
	mock.ExpectGet(fmt.Sprintf(KeyPosts, int64(7))).SetVal(string(data))

	got, err := cache.GetPost(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.Title, got.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPost_Miss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewPostCache(client)

	mock.ExpectGet(fmt.Sprintf(KeyPosts, int64(7))).RedisNil()

	_, err := cache.GetPost(context.Background(), 7)

	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestSetPost(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewPostCache(client)

	p := domain.Post{ID: 7, Title: "hello", User: domain.User{ID: 1}}
	data, err := json.Marshal(&p)
	assert.NoError(t, err)
	mock.ExpectSet(fmt.Sprintf(KeyPosts, int64(7)), data, postTTL).SetVal("OK")

	assert.NoError(t, cache.SetPost(context.Background(), &p))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePost_DropsPostAndCounter(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewPostCache(client)

	mock.ExpectDel(
		fmt.Sprintf(KeyPosts, int64(7)),
		fmt.Sprintf(KeyLikeCount, int64(7)),
	).SetVal(2)

	assert.NoError(t, cache.DeletePost(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLikeCount_Hit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewPostCache(client)

	mock.ExpectGet(fmt.Sprintf(KeyLikeCount, int64(7))).SetVal("5")

	count, err := cache.GetLikeCount(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestGetLikeCount_Miss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewPostCache(client)

	mock.ExpectGet(fmt.Sprintf(KeyLikeCount, int64(7))).RedisNil()

	_, err := cache.GetLikeCount(context.Background(), 7)

	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestSetUserLikedPosts(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewPostCache(client)

	key := fmt.Sprintf(KeyUserLikedPosts, int64(1))
	mock.ExpectSAdd(key, int64(7), int64(8)).SetVal(2)
	mock.ExpectExpire(key, likedSetTTL).SetVal(true)

	err := cache.SetUserLikedPosts(context.Background(), 1, []int64{7, 8})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetUserLikedPosts_EmptySkipsRedis(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewPostCache(client)

	err := cache.SetUserLikedPosts(context.Background(), 1, nil)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
