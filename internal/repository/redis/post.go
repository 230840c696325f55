package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/redis/go-redis/v9"
)

const (
	KeyPosts          = "post:%d"
	KeyLikeCount      = "post:likes:%d"
	KeyUserLikedPosts = "post:user:%d:likedPosts"

	postTTL     = 10 * time.Minute
	likedSetTTL = 30 * time.Minute
)

type postCache struct {
	client *redis.Client
}

var _ domain.PostCache = (*postCache)(nil)

func NewPostCache(client *redis.Client) *postCache {
	return &postCache{
		client,
	}
}

func (c *postCache) GetPost(ctx context.Context, id int64) (res domain.Post, err error) {
	key := fmt.Sprintf(KeyPosts, id)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Post{}, domain.ErrCacheMiss
	} else if err != nil {
		return domain.Post{}, err
	}
	if err = json.Unmarshal(data, &res); err != nil {
		return domain.Post{}, err
	}
	return
}

func (c *postCache) SetPost(ctx context.Context, p *domain.Post) (err error) {
	key := fmt.Sprintf(KeyPosts, p.ID)
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	err = c.client.Set(ctx, key, data, postTTL).Err()
	return
}

func (c *postCache) DeletePost(ctx context.Context, id int64) error {
	return c.client.Del(ctx,
		fmt.Sprintf(KeyPosts, id),
		fmt.Sprintf(KeyLikeCount, id),
	).Err()
}

func (c *postCache) GetLikeCount(ctx context.Context, postID int64) (int64, error) {
	val, err := c.client.Get(ctx, fmt.Sprintf(KeyLikeCount, postID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrCacheMiss
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

func (c *postCache) SetLikeCount(ctx context.Context, postID int64, likes int64) error {
	return c.client.Set(ctx, fmt.Sprintf(KeyLikeCount, postID), likes, postTTL).Err()
}

// IncrLikeCount only bumps a counter that is already cached, a missing
// counter will be seeded from the database on the next read.
func (c *postCache) IncrLikeCount(ctx context.Context, postID int64, delta int64) error {
	var script = redis.NewScript(`
		if redis.call('EXISTS', KEYS[1]) == 1 then
			redis.call('INCRBY', KEYS[1], ARGV[1])
		end
		return 1
	`)
	return script.Run(ctx, c.client, []string{fmt.Sprintf(KeyLikeCount, postID)}, delta).Err()
}

func (c *postCache) IsLikedBatch(ctx context.Context, userID int64, postIDs []int64) (map[int64]bool, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	args := make([]any, len(postIDs))
	for i, id := range postIDs {
		args[i] = any(id)
	}

	script := redis.NewScript(`
        if redis.call('EXISTS', KEYS[1]) == 0 then
            return nil
        end

        redis.call('EXPIRE', KEYS[1], 60*30)

        local results = {}
        for i, id in ipairs(ARGV) do
            results[i] = redis.call('SISMEMBER', KEYS[1], id)
        end
        return results
    `)
	result, err := script.Run(ctx, c.client, []string{fmt.Sprintf(KeyUserLikedPosts, userID)}, args).Slice()

	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	resMap := make(map[int64]bool)
	for i, val := range result {
		resMap[postIDs[i]] = (val.(int64) == 1)
	}

	return resMap, nil
}

func (c *postCache) SetUserLikedPosts(ctx context.Context, userID int64, postIDs []int64) error {
	if len(postIDs) == 0 {
		return nil
	}
	ipids := make([]any, len(postIDs))
	for i, pid := range postIDs {
		ipids[i] = any(pid)
	}
	key := fmt.Sprintf(KeyUserLikedPosts, userID)
	pipe := c.client.Pipeline()
	pipe.SAdd(ctx, key, ipids...)
	pipe.Expire(ctx, key, likedSetTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// AddUserLikedPost updates an already cached liked-set, a cold set stays
// cold until SetUserLikedPosts seeds it from the database.
func (c *postCache) AddUserLikedPost(ctx context.Context, userID, postID int64) error {
	var script = redis.NewScript(`
		if redis.call('EXISTS', KEYS[1]) == 1 then
			redis.call('SADD', KEYS[1], ARGV[1])
			redis.call('EXPIRE', KEYS[1], 1800)
		end
		return 1
	`)
	return script.Run(ctx, c.client, []string{fmt.Sprintf(KeyUserLikedPosts, userID)}, postID).Err()
}

func (c *postCache) RemoveUserLikedPost(ctx context.Context, userID, postID int64) error {
	var script = redis.NewScript(`
		if redis.call('EXISTS', KEYS[1]) == 1 then
			redis.call('SREM', KEYS[1], ARGV[1])
			redis.call('EXPIRE', KEYS[1], 1800)
		end
		return 1
	`)
	return script.Run(ctx, c.client, []string{fmt.Sprintf(KeyUserLikedPosts, userID)}, postID).Err()
}
