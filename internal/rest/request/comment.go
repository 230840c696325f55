package request

import "github.com/Guyuepp/Go-Clean-Architecture-Social/domain"

type Comment struct {
	Content string `json:"content" binding:"required"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		Content: r.Content,
	}
}
