package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/repository"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/repository/mysql/model"
)

type postRepository struct {
	DB *gorm.DB
}

var _ domain.PostDBRepository = (*postRepository)(nil)

// NewPostDBRepository creates the database-only post repository
func NewPostDBRepository(db *gorm.DB) *postRepository {
	return &postRepository{db}
}

func (m *postRepository) Fetch(ctx context.Context, q domain.PostQuery) (res []domain.Post, err error) {
	var posts []model.Post

	repository.PageVerify(&q.Num)
	tx := m.DB.WithContext(ctx).Model(&model.Post{})

	if q.Cursor != "" {
		decodedCursor, err := repository.DecodeCursor(q.Cursor)
		if err != nil {
			return nil, domain.ErrBadParamInput
		}
		tx = tx.Where("created_at < ?", decodedCursor)
	}

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where("title LIKE ? OR content LIKE ?", pattern, pattern)
	}

	if q.AuthorID != 0 {
		tx = tx.Where("user_id = ?", q.AuthorID)
	}

	switch q.OrderBy {
	case "title":
		tx = tx.Order("title")
	default:
		tx = tx.Order("created_at DESC")
	}

	err = tx.Limit(int(q.Num)).Find(&posts).Error
	if err != nil {
		return
	}

	for _, post := range posts {
		res = append(res, post.ToDomain())
	}

	return
}

func (m *postRepository) FetchByAuthors(ctx context.Context, authorIDs []int64, cursor string, num int64) ([]domain.Post, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}

	repository.PageVerify(&num)
	tx := m.DB.WithContext(ctx).Model(&model.Post{}).Where("user_id IN ?", authorIDs)

	if cursor != "" {
		decodedCursor, err := repository.DecodeCursor(cursor)
		if err != nil {
			return nil, domain.ErrBadParamInput
		}
		tx = tx.Where("created_at < ?", decodedCursor)
	}

	var posts []model.Post
	err := tx.Order("created_at DESC").Limit(int(num)).Find(&posts).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Post, len(posts))
	for i := range posts {
		res[i] = posts[i].ToDomain()
	}
	return res, nil
}

func (m *postRepository) GetByID(ctx context.Context, id int64) (res domain.Post, err error) {
	var post model.Post
	err = m.DB.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		return res, domain.ErrNotFound
	}
	res = post.ToDomain()
	return
}

func (m *postRepository) Store(ctx context.Context, p *domain.Post) (err error) {
	postModel := model.NewPostFromDomain(p)
	result := m.DB.WithContext(ctx).Create(&postModel)
	if result.Error != nil {
		return result.Error
	}
	p.ID = postModel.ID
	p.CreatedAt = postModel.CreatedAt
	p.UpdatedAt = postModel.UpdatedAt
	return
}

func (m *postRepository) Update(ctx context.Context, p *domain.Post) (err error) {
	result := m.DB.WithContext(ctx).Model(&model.Post{ID: p.ID}).
		Updates(map[string]any{
			"title":      p.Title,
			"content":    p.Content,
			"updated_at": p.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return
}

// Delete removes the post and cascades to its comments and likes in one
// transaction. Notification rows that point at the post stay behind.
func (m *postRepository) Delete(ctx context.Context, id int64) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("post_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (m *postRepository) AddLikes(ctx context.Context, id int64, delta int64) error {
	result := m.DB.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", id).
		Update("likes", gorm.Expr("likes + ?", delta))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *postRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Post{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return
}
