package auth

import (
	"testing"

	"alertnet_backend/internal/config"
	"alertnet_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJWTConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 1
	config.AppConfig = cfg
}

func TestTokenRoundTrip(t *testing.T) {
	setupJWTConfig(t)

	user := &models.User{
		BaseModel:   models.BaseModel{ID: "user-1"},
		Role:        models.UserRoleModerator,
		IsSuperuser: true,
	}

	token, err := GenerateToken(user)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.UserRoleModerator, claims.Role)
	assert.True(t, claims.IsSuperuser)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	setupJWTConfig(t)

	_, err := ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	setupJWTConfig(t)
	token, err := GenerateToken(&models.User{BaseModel: models.BaseModel{ID: "u"}})
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "different-secret"
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
