package rest

import (
	"net/http"
	"strconv"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/rest/response"
	"github.com/gin-gonic/gin"
)

type feedHandler struct {
	Service domain.FeedUsecase
}

func NewFeedHandler(svc domain.FeedUsecase) *feedHandler {
	return &feedHandler{
		Service: svc,
	}
}

// Fetch returns the caller's timeline, newest first
func (h *feedHandler) Fetch(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	numS := c.Query("num")
	num, err := strconv.Atoi(numS)
	if err != nil || num < PageMinNum || num > PageMaxNum {
		num = DefaultPageNum
	}
	cursor := c.Query("cursor")

	posts, nextCursor, err := h.Service.FeedFor(c.Request.Context(), userID.(int64), cursor, int64(num))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Post, len(posts))
	for i := range posts {
		res[i] = response.NewPostFromDomain(&posts[i])
	}
	c.Header("X-cursor", nextCursor)
	c.JSON(http.StatusOK, res)
}
