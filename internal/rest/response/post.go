package response

import (
	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
)

type Post struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	UserID    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	UpdatedAt string `json:"updated_at"`
	CreatedAt string `json:"created_at"`
	Likes     int64  `json:"likes"`
}

// NewPostFromDomain: Domain -> Response
func NewPostFromDomain(p *domain.Post) Post {
	return Post{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		UserID:    p.User.ID,
		UserName:  p.User.Name,
		UpdatedAt: p.UpdatedAt.Format(DateTimeFormat),
		CreatedAt: p.CreatedAt.Format(DateTimeFormat),
		Likes:     p.Likes,
	}
}
