package mocks

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/stretchr/testify/mock"
)

// NotificationRepository is a mock type for domain.NotificationRepository
type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) Store(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *NotificationRepository) BatchStore(ctx context.Context, ns []domain.Notification) error {
	args := m.Called(ctx, ns)
	return args.Error(0)
}

func (m *NotificationRepository) FetchByRecipient(ctx context.Context, recipientID int64, cursor string, limit int64) ([]domain.Notification, error) {
	args := m.Called(ctx, recipientID, cursor, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *NotificationRepository) MarkRead(ctx context.Context, recipientID, id int64) error {
	args := m.Called(ctx, recipientID, id)
	return args.Error(0)
}

func (m *NotificationRepository) CountUnread(ctx context.Context, recipientID int64) (int64, error) {
	args := m.Called(ctx, recipientID)
	return args.Get(0).(int64), args.Error(1)
}

// NotifyWorker is a mock type for domain.NotifyWorker
type NotifyWorker struct {
	mock.Mock
}

func (m *NotifyWorker) Start(ctx context.Context) {
	m.Called(ctx)
}

func (m *NotifyWorker) Send(n domain.Notification) {
	m.Called(n)
}
