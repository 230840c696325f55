package request

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)

// usernames are URL-safe handles: letters, digits and underscores
func validUsername(fl validator.FieldLevel) bool {
	return usernameRe.MatchString(fl.Field().String())
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("username", validUsername)
	}
}
