package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/rest/request"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/rest/response"
	"github.com/gin-gonic/gin"
)

// UserHandler represent the httphandler for users and the follow graph
type UserHandler struct {
	Service domain.UserUsecase
	Follow  domain.FollowUsecase
}

func NewUserHandler(svc domain.UserUsecase, follow domain.FollowUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
		Follow:  follow,
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req request.Register
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.Service.Register(c.Request.Context(), req.Name, req.Username, req.Password)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewUserFromDomain(&u))
}

func (h *UserHandler) Login(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.Service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// do not leak which of the two was wrong
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	u, err := h.Service.GetProfile(c.Request.Context(), userID.(int64))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewUserFromDomain(&u))
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req request.UpdateProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	u, err := h.Service.UpdateProfile(c.Request.Context(), userID.(int64), req.Name, req.Bio)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewUserFromDomain(&u))
}

func (h *UserHandler) EditPassword(c *gin.Context) {
	var req request.EditPassword
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.Service.EditPassword(c.Request.Context(), userID.(int64), req.OldPassword, req.NewPassword); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// FollowUser adds a follow edge from the caller to the target user
func (h *UserHandler) FollowUser(c *gin.Context) {
	targetP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.Follow.Follow(c.Request.Context(), userID.(int64), int64(targetP)); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "following"})
}

// UnfollowUser removes the follow edge, a no-op when it doesn't exist
func (h *UserHandler) UnfollowUser(c *gin.Context) {
	targetP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.Follow.Unfollow(c.Request.Context(), userID.(int64), int64(targetP)); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "unfollowed"})
}

// Following lists the users the given user follows
func (h *UserHandler) Following(c *gin.Context) {
	h.listRelations(c, h.Follow.Following)
}

// Followers lists the users following the given user
func (h *UserHandler) Followers(c *gin.Context) {
	h.listRelations(c, h.Follow.Followers)
}

func (h *UserHandler) listRelations(c *gin.Context, load func(ctx context.Context, id int64) ([]domain.User, error)) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	users, err := load(c.Request.Context(), int64(idP))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]*response.User, len(users))
	for i := range users {
		res[i] = response.NewUserFromDomain(&users[i])
	}
	c.JSON(http.StatusOK, gin.H{"users": res})
}
