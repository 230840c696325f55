package notification

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/repository"
)

type service struct {
	notificationRepo domain.NotificationRepository
	userRepo         domain.UserRepository
}

var _ domain.NotificationUsecase = (*service)(nil)

func NewService(notificationRepo domain.NotificationRepository, userRepo domain.UserRepository) *service {
	return &service{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

/*
* fillActorDetails uses errgroup with the pipeline pattern
* Look how this works in this package explanation
* in godoc: https://godoc.org/golang.org/x/sync/errgroup#ex-Group--Pipeline
 */
func (s *service) fillActorDetails(ctx context.Context, data []domain.Notification) ([]domain.Notification, error) {
	g, ctx := errgroup.WithContext(ctx)

	mapUsers := map[int64]domain.User{}
	for _, n := range data { //nolint
		mapUsers[n.ActorID] = domain.User{}
	}

	chanUser := make(chan domain.User)
	for actorID := range mapUsers {
		actorID := actorID
		g.Go(func() error {
			res, err := s.userRepo.GetByID(ctx, actorID)
			if err != nil {
				return err
			}
			chanUser <- res
			return nil
		})
	}

	go func() {
		defer close(chanUser)
		err := g.Wait()
		if err != nil {
			logrus.Error(err)
			return
		}
	}()

	for user := range chanUser {
		if user != (domain.User{}) {
			user.Password = ""
			mapUsers[user.ID] = user
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for index, item := range data { //nolint
		if actor, ok := mapUsers[item.ActorID]; ok {
			actor := actor
			data[index].Actor = &actor
		}
	}
	return data, nil
}

func (s *service) FetchFor(ctx context.Context, recipientID int64, cursor string, limit int64) ([]domain.Notification, string, error) {
	res, err := s.notificationRepo.FetchByRecipient(ctx, recipientID, cursor, limit)
	if err != nil {
		return nil, "", err
	}
	if len(res) == 0 {
		return []domain.Notification{}, "", nil
	}

	res, err = s.fillActorDetails(ctx, res)
	if err != nil {
		return nil, "", err
	}

	return res, repository.EncodeCursor(res[len(res)-1].CreatedAt), nil
}

func (s *service) MarkRead(ctx context.Context, recipientID, id int64) error {
	return s.notificationRepo.MarkRead(ctx, recipientID, id)
}

func (s *service) CountUnread(ctx context.Context, recipientID int64) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, recipientID)
}
