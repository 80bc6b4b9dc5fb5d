package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"beacon-care-server/internal/config"
	"beacon-care-server/internal/models"
	"beacon-care-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func authTestRouter(cfg *config.Config, roles ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/", AuthMiddleware(cfg))
	if len(roles) > 0 {
		group.Use(RoleAuthMiddleware(roles...))
	}
	group.GET("/probe", func(c *gin.Context) {
		id, _ := GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userID": id, "patientID": GetPatientIDFromContext(c)})
	})
	return r
}

func tokenFor(t *testing.T, cfg *config.Config, user *models.User) string {
	t.Helper()
	access, _, err := utils.GenerateTokens(user, cfg)
	assert.NoError(t, err)
	return access
}

func middlewareTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:                 "mw-test-secret",
		JWTRefreshSecret:          "mw-test-refresh",
		JWTExpirationMinutes:      5,
		JWTRefreshExpirationHours: 1,
	}
}

func TestAuthMiddlewareRejectsMissingAndMalformedHeaders(t *testing.T) {
	cfg := middlewareTestConfig()
	r := authTestRouter(cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewarePopulatesSessionIdentity(t *testing.T) {
	cfg := middlewareTestConfig()
	r := authTestRouter(cfg)

	user := &models.User{ID: "u4", Role: models.RolePatient, PatientID: "p1"}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, cfg, user))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":"u4"`)
	assert.Contains(t, w.Body.String(), `"patientID":"p1"`)
}

func TestRoleAuthMiddlewareGating(t *testing.T) {
	cfg := middlewareTestConfig()
	r := authTestRouter(cfg, models.RoleNurse, models.RoleDoctor)

	nurse := &models.User{ID: "u1", Role: models.RoleNurse}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, cfg, nurse))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	patient := &models.User{ID: "u4", Role: models.RolePatient, PatientID: "p1"}
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, cfg, patient))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
