package middleware

import (
	"net/http"
	"strings"

	"bizhub/config"
	"bizhub/internal/delivery/api/response"
	"bizhub/internal/domain/entity"
	"bizhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyRole   = "role"
)

// AuthMiddleware validates session tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:   tokenSvc,
		cookieName: cfg.Session.CookieName,
	}
}

// Authenticate accepts the session cookie or a Bearer Authorization header.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired session")
		}

		role := entity.Role(claims.Role)
		if claims.UserID == uuid.Nil || !role.IsValid() {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid session claims")
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyRole, role)

		return next(c)
	}
}

// RequireRole rejects sessions of any other role with 403.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := GetRole(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
			}
			if role != required {
				return response.Error(c, http.StatusForbidden, "FORBIDDEN", "Permission denied: require '"+required.String()+"' role", nil)
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return ""
	}

	return strings.TrimSpace(token)
}

// GetUserID returns the authenticated principal id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return id, ok
}

// GetRole returns the authenticated principal role.
func GetRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(contextKeyRole).(entity.Role)

	return role, ok
}
