package handlers

import (
	"beacon-care-server/internal/config"
	"beacon-care-server/internal/models"
	"beacon-care-server/internal/store"
	"beacon-care-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles session issuance for the seeded clinical
// profiles. The portal authenticates by profile selection; there are no
// credentials.
type AuthHandler struct {
	Store  *store.Store
	Config *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(s *store.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Store: s, Config: cfg}
}

// GetProfiles lists the selectable clinical profiles for the login
// screen.
func (h *AuthHandler) GetProfiles(c *gin.Context) {
	state := h.Store.State()
	utils.Success(c, "Profiles fetched successfully", state.Users)
}

// LoginRequest represents the request body for selecting a profile.
type LoginRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// Login issues a token pair for the selected profile.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	state := h.Store.State()
	user, found := state.UserByID(req.UserID)
	if !found {
		utils.NotFound(c, "Profile not found")
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(&user, h.Config)
	if err != nil {
		utils.InternalServerError(c, "Failed to issue session tokens: "+err.Error())
		return
	}

	utils.Success(c, "Session started", gin.H{
		"user":         user,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// RefreshTokenRequest represents the request body for refreshing a
// session.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RefreshToken exchanges a valid refresh token for a new token pair.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	claims, err := utils.ValidateToken(req.RefreshToken, h.Config.JWTRefreshSecret)
	if err != nil {
		utils.Unauthorized(c, "Invalid refresh token")
		return
	}

	state := h.Store.State()
	user, found := state.UserByID(claims.UserID)
	if !found {
		utils.Unauthorized(c, "Profile no longer exists")
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(&user, h.Config)
	if err != nil {
		utils.InternalServerError(c, "Failed to issue session tokens: "+err.Error())
		return
	}

	utils.Success(c, "Session refreshed", gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// GetProfile returns the authenticated session's profile.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, found := currentUser(c, h.Store)
	if !found {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	utils.Success(c, "Profile fetched successfully", user)
}

// Logout resets the portal theme on sign-out. Tokens are stateless, so
// there is nothing server-side to invalidate.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Store.SetTheme(models.ThemeClinical)
	utils.Success(c, "Signed out", nil)
}
