package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/rest/request"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/rest/response"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

const (
	DefaultPageNum = 10
	PageMinNum     = 5
	PageMaxNum     = 30
)

// PostHandler represent the httphandler for posts
type PostHandler struct {
	Service  domain.PostUsecase
	Reaction domain.ReactionUsecase
}

func NewPostHandler(svc domain.PostUsecase, reaction domain.ReactionUsecase) *PostHandler {
	return &PostHandler{
		Service:  svc,
		Reaction: reaction,
	}
}

// GetByID will get the post by given id
func (h *PostHandler) GetByID(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	id := int64(idP)
	ctx := c.Request.Context()

	post, err := h.Service.GetByID(ctx, id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewPostFromDomain(&post))
}

// Fetch will fetch posts based on the given params
func (h *PostHandler) Fetch(c *gin.Context) {
	numS := c.Query("num")
	num, err := strconv.Atoi(numS)
	if err != nil || num < PageMinNum || num > PageMaxNum {
		num = DefaultPageNum
	}

	authorID, _ := strconv.ParseInt(c.Query("author_id"), 10, 64)

	q := domain.PostQuery{
		Cursor:   c.Query("cursor"),
		Num:      int64(num),
		Search:   c.Query("search"),
		AuthorID: authorID,
		OrderBy:  c.Query("order_by"),
	}
	ctx := c.Request.Context()

	listPosts, nextCursor, err := h.Service.Fetch(ctx, q)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	res := make([]response.Post, len(listPosts))
	for i := range listPosts {
		res[i] = response.NewPostFromDomain(&listPosts[i])
	}
	c.Header(`X-cursor`, nextCursor)
	c.JSON(http.StatusOK, res)
}

// Store will store the post by given request body
func (h *PostHandler) Store(c *gin.Context) {
	var req request.Post
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	post := req.ToDomain()

	ctx := c.Request.Context()
	if err := h.Service.Store(ctx, userID.(int64), &post); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewPostFromDomain(&post))
}

// Update will change title and content of the post, author only
func (h *PostHandler) Update(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.Post
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	post := req.ToDomain()
	post.ID = int64(idP)

	ctx := c.Request.Context()
	if err := h.Service.Update(ctx, userID.(int64), &post); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewPostFromDomain(&post))
}

// Delete will delete the post by given param, author only
func (h *PostHandler) Delete(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	id := int64(idP)

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), userID.(int64), id); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// Like records a like, a repeat is a safe no-op
func (h *PostHandler) Like(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	pid := int64(idP)

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	res, err := h.Reaction.Like(c.Request.Context(), userID.(int64), pid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

// Unlike removes a like record if it exists
func (h *PostHandler) Unlike(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	pid := int64(idP)

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	res, err := h.Reaction.Unlike(c.Request.Context(), userID.(int64), pid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

// getStatusCode maps domain errors to transport-level statuses
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidOperation), errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
