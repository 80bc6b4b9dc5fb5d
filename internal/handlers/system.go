package handlers

import (
	"beacon-care-server/internal/store"
	"beacon-care-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// SystemHandler handles the shared state snapshot and process-wide
// toggles.
type SystemHandler struct {
	Store *store.Store
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(s *store.Store) *SystemHandler {
	return &SystemHandler{Store: s}
}

// GetState returns the full domain snapshot the dashboards render from.
func (h *SystemHandler) GetState(c *gin.Context) {
	utils.Success(c, "State fetched successfully", h.Store.State())
}

// GetConfig returns the process-wide toggles.
func (h *SystemHandler) GetConfig(c *gin.Context) {
	state := h.Store.State()
	utils.Success(c, "System config fetched successfully", state.SystemConfig)
}

// ToggleRequest represents the request body for system toggles.
type ToggleRequest struct {
	Enable *bool `json:"enable" binding:"required"`
}

// ToggleVirtualDoctor switches the assistant persona.
func (h *SystemHandler) ToggleVirtualDoctor(c *gin.Context) {
	var req ToggleRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	h.Store.ToggleVirtualDoctor(*req.Enable)
	utils.Success(c, "Virtual doctor mode updated", nil)
}

// ToggleSeniorMode switches the large-type accessibility mode.
func (h *SystemHandler) ToggleSeniorMode(c *gin.Context) {
	var req ToggleRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	h.Store.SetSeniorMode(*req.Enable)
	utils.Success(c, "Senior mode updated", nil)
}
