package handler

import (
	"net/http"
	"testing"
	"time"

	"bizhub/config"
	"bizhub/internal/domain/entity"
	domainerrors "bizhub/internal/domain/errors"
	mockUsecase "bizhub/internal/mocks/usecase"
	"bizhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSessionHandlerForTest(t *testing.T) (*SessionHandler, *mockUsecase.MockSessionUsecase) {
	t.Helper()

	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{
		SessionUC: sessionUC,
		Config: &config.Config{Session: &config.SessionConfig{
			CookieName: "bizhub_session",
			Secure:     true,
		}},
	})

	return h, sessionUC
}

func TestSessionHandler_LoginBusiness_SetsCookie(t *testing.T) {
	h, sessionUC := newSessionHandlerForTest(t)
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	userID := uuid.New()

	sessionUC.EXPECT().
		LoginBusinessUser(mock.Anything, &usecase.LoginInput{Email: "owner@example.com", Password: "s3cret"}).
		Return(&usecase.SessionOutput{
			Token:     "jwt-token",
			ExpiresAt: expiresAt,
			UserID:    userID,
			Role:      entity.RoleBusiness,
		}, nil)

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/auth/business/login",
		`{"email":"owner@example.com","password":"s3cret"}`)
	require.NoError(t, h.LoginBusiness(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "bizhub_session", cookies[0].Name)
	assert.Equal(t, "jwt-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, "/", cookies[0].Path)
}

func TestSessionHandler_LoginAdmin_InvalidCredentials(t *testing.T) {
	h, sessionUC := newSessionHandlerForTest(t)

	sessionUC.EXPECT().LoginAdmin(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/auth/admin/login",
		`{"email":"ops@example.com","password":"wrong"}`)
	require.NoError(t, h.LoginAdmin(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSessionHandler_Login_ValidationFailure(t *testing.T) {
	h, _ := newSessionHandlerForTest(t)

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/auth/business/login", `{"email":"not-an-email"}`)
	require.NoError(t, h.LoginBusiness(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Code)
}

func TestSessionHandler_Logout_ClearsCookie(t *testing.T) {
	h, _ := newSessionHandlerForTest(t)

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/auth/logout", "")
	require.NoError(t, h.Logout(c))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "bizhub_session", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
