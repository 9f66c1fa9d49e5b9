package auth

import (
	"testing"
	"time"

	"bizhub/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{Session: &config.SessionConfig{TTL: time.Hour}}
	cfg.SecretKey.Session = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	userID := uuid.New()
	token, expiresAt, err := svc.GenerateSessionToken(userID, "business")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "business", claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("secret-one"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret-two"))
	require.NoError(t, err)

	token, _, err := issuer.GenerateSessionToken(uuid.New(), "admin")
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret"))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := impl.GenerateSessionToken(uuid.New(), "business")
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}
