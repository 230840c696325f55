package reaction

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
)

// userLikedLoadLimit caps how many liked post IDs are loaded into the
// cache when a user's liked-set is cold
const userLikedLoadLimit = 300

type Service struct {
	likeRepo     domain.LikeRepository
	postRepo     domain.PostRepository
	cache        domain.PostCache
	gate         domain.Authorizer
	notifyWorker domain.NotifyWorker
}

var _ domain.ReactionUsecase = (*Service)(nil)

// NewService will create a new reaction service object
func NewService(likeRepo domain.LikeRepository, postRepo domain.PostRepository, cache domain.PostCache, gate domain.Authorizer, notifyWorker domain.NotifyWorker) *Service {
	return &Service{
		likeRepo:     likeRepo,
		postRepo:     postRepo,
		cache:        cache,
		gate:         gate,
		notifyWorker: notifyWorker,
	}
}

// Like records actorID liking postID. The store's unique (user, post)
// index makes the operation idempotent: a repeat returns Changed=false
// and fires no side effects, so at most one notification ever exists for
// the pair.
func (s *Service) Like(ctx context.Context, actorID, postID int64) (domain.LikeResult, error) {
	if err := s.gate.Authorize(actorID, domain.ActionLike, nil); err != nil {
		return domain.LikeResult{}, err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return domain.LikeResult{}, err
	}

	created, err := s.likeRepo.Insert(ctx, domain.Like{
		PostID:    postID,
		UserID:    actorID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return domain.LikeResult{}, err
	}

	if !created {
		// already liked, a safe no-op
		return domain.LikeResult{Changed: false, Likes: post.Likes}, nil
	}

	if err := s.postRepo.AddLikes(ctx, postID, 1); err != nil {
		logrus.Errorf("failed to bump like counter for post %d: %v", postID, err)
	}
	if err := s.cache.AddUserLikedPost(ctx, actorID, postID); err != nil {
		logrus.Warnf("failed to update liked set for user %d: %v", actorID, err)
	}

	// fan out exactly one notification, never for self-likes
	if post.User.ID != actorID {
		s.notifyWorker.Send(domain.Notification{
			RecipientID: post.User.ID,
			ActorID:     actorID,
			Verb:        domain.VerbLikedPost,
			TargetID:    postID,
			CreatedAt:   time.Now(),
		})
	}

	return domain.LikeResult{Changed: true, Likes: post.Likes + 1}, nil
}

// Unlike removes the like record if present, a no-op otherwise. The
// notification already emitted for the like stays in the ledger.
func (s *Service) Unlike(ctx context.Context, actorID, postID int64) (domain.LikeResult, error) {
	if err := s.gate.Authorize(actorID, domain.ActionLike, nil); err != nil {
		return domain.LikeResult{}, err
	}

	removed, err := s.likeRepo.Delete(ctx, domain.Like{
		PostID: postID,
		UserID: actorID,
	})
	if err != nil {
		return domain.LikeResult{}, err
	}

	if !removed {
		return domain.LikeResult{Changed: false}, nil
	}

	if err := s.postRepo.AddLikes(ctx, postID, -1); err != nil && !errors.Is(err, domain.ErrNotFound) {
		logrus.Errorf("failed to drop like counter for post %d: %v", postID, err)
	}
	if err := s.cache.RemoveUserLikedPost(ctx, actorID, postID); err != nil {
		logrus.Warnf("failed to update liked set for user %d: %v", actorID, err)
	}

	return domain.LikeResult{Changed: true}, nil
}

// IsLiked answers from the cached liked-set when warm and falls back to
// the store, warming the set for the next call.
func (s *Service) IsLiked(ctx context.Context, actorID, postID int64) (bool, error) {
	res, err := s.cache.IsLikedBatch(ctx, actorID, []int64{postID})
	if err == nil {
		return res[postID], nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to read liked set for user %d: %v", actorID, err)
	}

	liked, err := s.likeRepo.Exists(ctx, domain.Like{PostID: postID, UserID: actorID})
	if err != nil {
		return false, err
	}

	go func(uid int64) {
		likedPosts, err := s.likeRepo.FetchUserLikedPosts(context.Background(), uid, userLikedLoadLimit)
		if err != nil {
			logrus.Warnf("failed to load liked posts for user %d: %v", uid, err)
			return
		}
		if err := s.cache.SetUserLikedPosts(context.Background(), uid, likedPosts); err != nil {
			logrus.Warnf("failed to warm liked set for user %d: %v", uid, err)
		}
	}(actorID)

	return liked, nil
}
