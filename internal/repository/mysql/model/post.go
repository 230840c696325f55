package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
)

type Post struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Content   string    `gorm:"type:longtext;not null"`
	UserID    int64     `gorm:"column:user_id;not null;index"`
	Likes     int64     `gorm:"default:0"`
	UpdatedAt time.Time `gorm:"type:datetime"`
	CreatedAt time.Time `gorm:"type:datetime;index"`
}

func (Post) TableName() string {
	return "post"
}

func (m *Post) ToDomain() domain.Post {
	return domain.Post{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		UpdatedAt: m.UpdatedAt,
		CreatedAt: m.CreatedAt,
		User: domain.User{
			ID: m.UserID,
		},
		Likes: m.Likes,
	}
}

func NewPostFromDomain(p *domain.Post) *Post {
	return &Post{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		UserID:    p.User.ID,
		UpdatedAt: p.UpdatedAt,
		CreatedAt: p.CreatedAt,
		Likes:     p.Likes,
	}
}
