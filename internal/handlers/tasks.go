package handlers

import (
	"beacon-care-server/internal/store"
	"beacon-care-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles the follow-up work queue.
type TaskHandler struct {
	Store *store.Store
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(s *store.Store) *TaskHandler {
	return &TaskHandler{Store: s}
}

// GetTasks lists the work queue, newest-first.
func (h *TaskHandler) GetTasks(c *gin.Context) {
	state := h.Store.State()
	utils.Success(c, "Tasks fetched successfully", state.Tasks)
}

// ResolveTask removes a task from the queue.
func (h *TaskHandler) ResolveTask(c *gin.Context) {
	if !h.Store.ResolveTask(c.Param("id")) {
		utils.NotFound(c, "Task not found")
		return
	}
	utils.Success(c, "Task resolved", nil)
}
