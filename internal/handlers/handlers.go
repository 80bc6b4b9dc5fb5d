package handlers

import (
	"beacon-care-server/internal/middleware"
	"beacon-care-server/internal/models"
	"beacon-care-server/internal/store"

	"github.com/gin-gonic/gin"
)

// currentUser resolves the authenticated session to its seeded user
// profile.
func currentUser(c *gin.Context, s *store.Store) (models.User, bool) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		return models.User{}, false
	}
	state := s.State()
	return state.UserByID(userID)
}
