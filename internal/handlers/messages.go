package handlers

import (
	"beacon-care-server/internal/middleware"
	"beacon-care-server/internal/models"
	"beacon-care-server/internal/store"
	"beacon-care-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// MessageHandler handles messaging between portal users.
type MessageHandler struct {
	Store *store.Store
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(s *store.Store) *MessageHandler {
	return &MessageHandler{Store: s}
}

// SendMessageRequest represents the request body for sending a message.
type SendMessageRequest struct {
	ReceiverID string `json:"receiverId" binding:"required"`
	Text       string `json:"text" binding:"required"`
}

// SendMessage appends a message from the authenticated user.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	senderID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Sender not found in token")
		return
	}

	state := h.Store.State()
	if _, found := state.UserByID(req.ReceiverID); !found {
		utils.NotFound(c, "Recipient user not found")
		return
	}

	msg := h.Store.SendMessage(senderID, req.ReceiverID, req.Text)
	utils.Created(c, "Message sent successfully", msg)
}

// GetMessages lists the authenticated user's conversation history in
// chronological order.
func (h *MessageHandler) GetMessages(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	state := h.Store.State()
	own := make([]models.Message, 0)
	for _, m := range state.Messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			own = append(own, m)
		}
	}
	utils.Success(c, "Messages fetched successfully", own)
}
