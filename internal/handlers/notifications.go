package handlers

import (
	"beacon-care-server/internal/middleware"
	"beacon-care-server/internal/models"
	"beacon-care-server/internal/store"
	"beacon-care-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles the notification feed.
type NotificationHandler struct {
	Store *store.Store
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(s *store.Store) *NotificationHandler {
	return &NotificationHandler{Store: s}
}

// GetNotifications lists the authenticated user's feed, newest-first.
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	state := h.Store.State()
	feed := make([]models.Notification, 0)
	for _, n := range state.Notifications {
		if n.UserID == userID {
			feed = append(feed, n)
		}
	}
	utils.Success(c, "Notifications fetched successfully", feed)
}

// MarkRead flips a notification to read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if !h.Store.MarkNotificationRead(c.Param("id")) {
		utils.NotFound(c, "Notification not found")
		return
	}
	utils.Success(c, "Notification marked as read", nil)
}
