package rest

import (
	"net/http"
	"strconv"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/rest/response"
	"github.com/gin-gonic/gin"
)

type notificationHandler struct {
	Service domain.NotificationUsecase
}

func NewNotificationHandler(svc domain.NotificationUsecase) *notificationHandler {
	return &notificationHandler{
		Service: svc,
	}
}

// Fetch lists the caller's notifications, most recent first
func (h *notificationHandler) Fetch(c *gin.Context) {
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

	notifications, nextCursor, err := h.Service.FetchFor(c.Request.Context(), userID.(int64), cursor, int64(num))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Notification, len(notifications))
	for i := range notifications {
		res[i] = response.NewNotificationFromDomain(&notifications[i])
	}
	c.Header("X-cursor", nextCursor)
	c.JSON(http.StatusOK, gin.H{"notifications": res})
}

// MarkRead flips the read flag of one of the caller's notifications
func (h *notificationHandler) MarkRead(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	if err := h.Service.MarkRead(c.Request.Context(), userID.(int64), int64(idP)); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// UnreadCount returns how many unread notifications the caller has
func (h *notificationHandler) UnreadCount(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	count, err := h.Service.CountUnread(c.Request.Context(), userID.(int64))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread": count})
}
