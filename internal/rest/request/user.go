package request

type Register struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required,username"`
	Password string `json:"password" binding:"required,min=8"`
}

type Login struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfile struct {
	Name string `json:"name" binding:"required"`
	Bio  string `json:"bio" binding:"max=255"`
}

type EditPassword struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}
