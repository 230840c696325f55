package mocks

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/stretchr/testify/mock"
)

// CommentRepository is a mock type for domain.CommentRepository
type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Store(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CommentRepository) Update(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CommentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *CommentRepository) FetchByPost(ctx context.Context, postID int64, cursor string, limit int64) ([]*domain.Comment, error) {
	args := m.Called(ctx, postID, cursor, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Comment), args.Error(1)
}
