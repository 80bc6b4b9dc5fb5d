package handlers

import (
	"beacon-care-server/internal/dispatch"
	"beacon-care-server/internal/store"
	"beacon-care-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// AssistantHandler accepts parsed assistant intents and hands them to
// the command dispatcher under the caller's session identity.
type AssistantHandler struct {
	Store      *store.Store
	Dispatcher *dispatch.Dispatcher
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(s *store.Store, d *dispatch.Dispatcher) *AssistantHandler {
	return &AssistantHandler{Store: s, Dispatcher: d}
}

// Command executes one assistant intent. Authorization and target
// resolution live in the dispatcher; this handler only attaches the
// caller.
func (h *AssistantHandler) Command(c *gin.Context) {
	var cmd dispatch.Command
	if !utils.BindAndValidate(c, &cmd) {
		return
	}

	caller, found := currentUser(c, h.Store)
	if !found {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	result := h.Dispatcher.Dispatch(cmd, caller)
	utils.Success(c, "Command dispatched", result)
}
