package request

import "github.com/Guyuepp/Go-Clean-Architecture-Social/domain"

type Post struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

// ToDomain: Request -> Domain
func (r *Post) ToDomain() domain.Post {
	return domain.Post{
		Title:   r.Title,
		Content: r.Content,
	}
}
