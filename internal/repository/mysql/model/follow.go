package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
)

// Follow has a composite unique index over (follower_id, followee_id),
// the same edge can never be stored twice.
type Follow struct {
	FollowerID int64     `gorm:"column:follower_id;not null;uniqueIndex:idx_follower_followee"`
	FolloweeID int64     `gorm:"column:followee_id;not null;uniqueIndex:idx_follower_followee;index"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (Follow) TableName() string {
	return "follows"
}

func NewFollowFromDomain(f domain.Follow) Follow {
	return Follow{
		FollowerID: f.FollowerID,
		FolloweeID: f.FolloweeID,
		CreatedAt:  f.CreatedAt,
	}
}

func (m *Follow) ToDomain() domain.Follow {
	return domain.Follow{
		FollowerID: m.FollowerID,
		FolloweeID: m.FolloweeID,
		CreatedAt:  m.CreatedAt,
	}
}
