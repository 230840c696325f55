package response

import "github.com/Guyuepp/Go-Clean-Architecture-Social/domain"

type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Bio      string `json:"bio,omitempty"`
}

// NewUserFromDomain: Domain -> Response
func NewUserFromDomain(u *domain.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Bio:      u.Bio,
	}
}
