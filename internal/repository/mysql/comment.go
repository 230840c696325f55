package mysql

import (
	"context"
	"errors"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/repository"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(comment)
	err := c.DB.WithContext(ctx).Create(commentModel).Error
	if err != nil {
		return err
	}
	comment.ID = commentModel.ID
	comment.CreatedAt = commentModel.CreatedAt
	return nil
}

func (c *commentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	result := c.DB.WithContext(ctx).Model(&model.Comment{ID: comment.ID}).
		Update("content", comment.Content)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *commentRepository) Delete(ctx context.Context, id int64) error {
	result := c.DB.WithContext(ctx).Delete(&model.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	domainComment := comment.ToDomain()
	return &domainComment, nil
}

func (c *commentRepository) FetchByPost(ctx context.Context, postID int64, cursor string, limit int64) ([]*domain.Comment, error) {
	var comments []model.Comment

	repository.PageVerify(&limit)
	tx := c.DB.WithContext(ctx).Where("post_id = ?", postID)

	if cursor != "" {
		decodedCursor, err := repository.DecodeCursor(cursor)
		if err != nil {
			return nil, domain.ErrBadParamInput
		}
		tx = tx.Where("created_at < ?", decodedCursor)
	}

	err := tx.Order("created_at DESC").Limit(int(limit)).Find(&comments).Error
	if err != nil {
		return nil, err
	}

	var res []*domain.Comment
	for _, comment := range comments {
		domainComment := comment.ToDomain()
		res = append(res, &domainComment)
	}
	return res, nil
}
