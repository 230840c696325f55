package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
)

// Like has a composite unique index over (user_id, post_id), the store
// enforces the one-like-per-pair invariant even under concurrent inserts.
type Like struct {
	PostID    int64     `gorm:"column:post_id;not null;uniqueIndex:idx_user_post"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:idx_user_post"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Like) TableName() string {
	return "user_likes"
}

func NewLikeFromDomain(l domain.Like) Like {
	return Like{
		PostID:    l.PostID,
		UserID:    l.UserID,
		CreatedAt: l.CreatedAt,
	}
}

func (m *Like) ToDomain() domain.Like {
	return domain.Like{
		PostID:    m.PostID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}
