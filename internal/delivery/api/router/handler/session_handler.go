package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"bizhub/config"
	"bizhub/internal/delivery/api/response"
	"bizhub/internal/delivery/api/validator"
	"bizhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// SessionHandler issues and clears session cookies.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	cfg       *config.SessionConfig
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		cfg:       params.Config.Session,
		logger:    params.Logger,
	}
}

// LoginRequest is the body of both login endpoints.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse describes the issued session.
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	UserID    uuid.UUID `json:"userId"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
}

// LoginBusiness logs in a business user.
func (h *SessionHandler) LoginBusiness(c echo.Context) error {
	return h.login(c, h.sessionUC.LoginBusinessUser)
}

// LoginAdmin logs in an operator.
func (h *SessionHandler) LoginAdmin(c echo.Context) error {
	return h.login(c, h.sessionUC.LoginAdmin)
}

// Logout clears the session cookie. Tokens are stateless, so nothing is revoked.
func (h *SessionHandler) Logout(c echo.Context) error {
	cookie := h.newCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	c.SetCookie(cookie)

	return response.OK(c, map[string]string{"message": "Logged out"})
}

func (h *SessionHandler) login(c echo.Context, loginFn func(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error)) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid login input", validator.FieldErrors(err))
	}

	out, err := loginFn(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.SetCookie(h.newCookie(out.Token, out.ExpiresAt))

	return response.OK(c, SessionResponse{
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
		UserID:    out.UserID,
		Role:      out.Role.String(),
		Name:      out.Name,
		Email:     out.Email,
	})
}

func (h *SessionHandler) newCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    value,
		Path:     "/",
		Domain:   h.cfg.Domain,
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
