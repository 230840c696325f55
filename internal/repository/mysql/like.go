package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/repository/mysql/model"
)

type likeRepository struct {
	DB *gorm.DB
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db *gorm.DB) *likeRepository {
	return &likeRepository{db}
}

// Insert races safely under concurrent identical requests: the unique
// (user_id, post_id) index makes sure exactly one row wins, the loser sees
// RowsAffected == 0 and reports created=false instead of an error.
func (m *likeRepository) Insert(ctx context.Context, l domain.Like) (bool, error) {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	likeModel := model.NewLikeFromDomain(l)

	result := m.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&likeModel)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (m *likeRepository) Delete(ctx context.Context, l domain.Like) (bool, error) {
	result := m.DB.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", l.UserID, l.PostID).
		Delete(&model.Like{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (m *likeRepository) Exists(ctx context.Context, l domain.Like) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("user_id = ? AND post_id = ?", l.UserID, l.PostID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *likeRepository) CountByPost(ctx context.Context, postID int64) (int64, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (m *likeRepository) FetchUserLikedPosts(ctx context.Context, userID int64, limit int64) ([]int64, error) {
	var res []int64
	err := m.DB.WithContext(ctx).
		Model(&model.Like{}).
		Select("post_id").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(int(limit)).
		Find(&res).Error

	return res, err
}
