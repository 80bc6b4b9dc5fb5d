package utils

import (
	"testing"

	"beacon-care-server/internal/config"
	"beacon-care-server/internal/models"

	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:                 "test-access-secret",
		JWTRefreshSecret:          "test-refresh-secret",
		JWTExpirationMinutes:      15,
		JWTRefreshExpirationHours: 168,
	}
}

func TestGenerateAndValidateTokens(t *testing.T) {
	cfg := testConfig()
	user := &models.User{ID: "u4", Name: "Margaret Smith", Role: models.RolePatient, PatientID: "p1"}

	access, refresh, err := GenerateTokens(user, cfg)
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	claims, err := ValidateToken(access, cfg.JWTSecret)
	assert.NoError(t, err)
	assert.Equal(t, "u4", claims.UserID)
	assert.Equal(t, models.RolePatient, claims.Role)
	assert.Equal(t, "p1", claims.PatientID)
	assert.Equal(t, "u4", claims.Subject)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := testConfig()
	user := &models.User{ID: "u1", Name: "Nurse Sarah", Role: models.RoleNurse}

	access, _, err := GenerateTokens(user, cfg)
	assert.NoError(t, err)

	_, err = ValidateToken(access, "some-other-secret")
	assert.Error(t, err)

	// The refresh token is signed with the refresh secret, so it must not
	// validate against the access secret.
	_, refresh, err := GenerateTokens(user, cfg)
	assert.NoError(t, err)
	_, err = ValidateToken(refresh, cfg.JWTSecret)
	assert.Error(t, err)
}

func TestStaffClaimsOmitPatientID(t *testing.T) {
	cfg := testConfig()
	user := &models.User{ID: "u2", Name: "Dr. James Wilson", Role: models.RoleDoctor}

	access, _, err := GenerateTokens(user, cfg)
	assert.NoError(t, err)

	claims, err := ValidateToken(access, cfg.JWTSecret)
	assert.NoError(t, err)
	assert.Empty(t, claims.PatientID)
}
