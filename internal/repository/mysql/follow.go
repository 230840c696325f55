package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/repository/mysql/model"
)

type followRepository struct {
	DB *gorm.DB
}

var _ domain.FollowRepository = (*followRepository)(nil)

func NewFollowRepository(db *gorm.DB) *followRepository {
	return &followRepository{db}
}

// AddEdge inserts the edge idempotently: re-adding an existing edge is
// absorbed by the unique index and reported as added=false.
func (m *followRepository) AddEdge(ctx context.Context, followerID, followeeID int64) (bool, error) {
	edge := model.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  time.Now(),
	}

	result := m.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (m *followRepository) RemoveEdge(ctx context.Context, followerID, followeeID int64) (bool, error) {
	result := m.DB.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.Follow{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (m *followRepository) Exists(ctx context.Context, followerID, followeeID int64) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *followRepository) FollowingIDs(ctx context.Context, followerID int64) ([]int64, error) {
	var ids []int64
	err := m.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("followee_id", &ids).Error
	return ids, err
}

func (m *followRepository) FollowerIDs(ctx context.Context, followeeID int64) ([]int64, error) {
	var ids []int64
	err := m.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("followee_id = ?", followeeID).
		Pluck("follower_id", &ids).Error
	return ids, err
}
