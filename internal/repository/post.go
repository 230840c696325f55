package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// postRepository coordinates the cache and the database. Reads of a single
// post prefer the cache, misses collapse into one database load via
// singleflight so a hot post never stampedes the store.
type postRepository struct {
	db           domain.PostDBRepository
	cache        domain.PostCache
	userRepo     domain.UserRepository
	likeRepo     domain.LikeRepository
	rebuildGroup singleflight.Group
}

var _ domain.PostRepository = (*postRepository)(nil)

// NewPostRepository creates the coordinating repository
func NewPostRepository(db domain.PostDBRepository, cache domain.PostCache, userRepo domain.UserRepository, likeRepo domain.LikeRepository) *postRepository {
	return &postRepository{
		db:       db,
		cache:    cache,
		userRepo: userRepo,
		likeRepo: likeRepo,
	}
}

func (r *postRepository) Fetch(ctx context.Context, q domain.PostQuery) ([]domain.Post, error) {
	posts, err := r.db.Fetch(ctx, q)
	if err != nil {
		return nil, err
	}

	return r.fillUserDetails(ctx, posts)
}

func (r *postRepository) FetchByAuthors(ctx context.Context, authorIDs []int64, cursor string, num int64) ([]domain.Post, error) {
	posts, err := r.db.FetchByAuthors(ctx, authorIDs, cursor, num)
	if err != nil {
		return nil, err
	}

	return r.fillUserDetails(ctx, posts)
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	post, err := r.cache.GetPost(ctx, id)
	if err == nil {
		r.refreshLikes(ctx, &post)
		return post, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("cache get error for post %d: %v", id, err)
	}

	// cache miss, collapse concurrent rebuilds
	key := "post:" + strconv.FormatInt(id, 10)
	result, err, _ := r.rebuildGroup.Do(key, func() (interface{}, error) {
		p, err := r.db.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		user, err := r.userRepo.GetByID(ctx, p.User.ID)
		if err != nil {
			return nil, err
		}
		p.User = user

		if err := r.cache.SetPost(ctx, &p); err != nil {
			logrus.Warnf("failed to set post cache: %v", err)
		}
		_ = r.cache.SetLikeCount(ctx, p.ID, p.Likes)

		return p, nil
	})

	if err != nil {
		return domain.Post{}, err
	}

	post = result.(domain.Post)
	return post, nil
}

// refreshLikes overlays the cached like counter on a cached post, seeding
// the counter from the store when it has expired.
func (r *postRepository) refreshLikes(ctx context.Context, p *domain.Post) {
	likes, err := r.cache.GetLikeCount(ctx, p.ID)
	if err == nil {
		p.Likes = likes
		return
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to get like count for post %d: %v", p.ID, err)
		return
	}

	count, err := r.likeRepo.CountByPost(ctx, p.ID)
	if err != nil {
		logrus.Warnf("failed to count likes for post %d: %v", p.ID, err)
		return
	}
	p.Likes = count
	_ = r.cache.SetLikeCount(ctx, p.ID, count)
}

func (r *postRepository) Store(ctx context.Context, p *domain.Post) error {
	return r.db.Store(ctx, p)
}

func (r *postRepository) Update(ctx context.Context, p *domain.Post) error {
	err := r.db.Update(ctx, p)
	if err != nil {
		return err
	}

	go func(id int64) {
		_ = r.cache.DeletePost(context.Background(), id)
	}(p.ID)

	return nil
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.Delete(ctx, id)
	if err != nil {
		return err
	}

	go func(id int64) {
		_ = r.cache.DeletePost(context.Background(), id)
	}(id)

	return nil
}

func (r *postRepository) AddLikes(ctx context.Context, id int64, delta int64) error {
	err := r.db.AddLikes(ctx, id, delta)
	if err != nil {
		return err
	}

	if err := r.cache.IncrLikeCount(ctx, id, delta); err != nil {
		logrus.Warnf("failed to bump like counter cache for post %d: %v", id, err)
	}

	return nil
}

func (r *postRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	return r.db.FetchIDs(ctx, cursor, limit)
}

// fillUserDetails batch-loads author details for a page of posts
func (r *postRepository) fillUserDetails(ctx context.Context, posts []domain.Post) ([]domain.Post, error) {
	if len(posts) == 0 {
		return posts, nil
	}

	userIDs := make([]int64, 0, len(posts))
	existMap := make(map[int64]bool)
	for _, item := range posts {
		if !existMap[item.User.ID] {
			userIDs = append(userIDs, item.User.ID)
			existMap[item.User.ID] = true
		}
	}

	users, err := r.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	userMap := make(map[int64]domain.User)
	for _, u := range users {
		userMap[u.ID] = u
	}

	for i := range posts {
		if u, ok := userMap[posts[i].User.ID]; ok {
			posts[i].User = u
		}
	}

	return posts, nil
}
