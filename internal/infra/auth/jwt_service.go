// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"bizhub/config"
	"bizhub/internal/domain/service"
	"bizhub/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionIssuer = "bizhub"

// jwtService issues HS256 session tokens.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := 7 * 24 * time.Hour
	if cfg.Session != nil && cfg.Session.TTL > 0 {
		ttl = cfg.Session.TTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Session),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// GenerateSessionToken creates a signed token for the subject and role.
func (s *jwtService) GenerateSessionToken(userID uuid.UUID, role string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := &service.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign session token")
	}

	return token, expiresAt, nil
}

// ValidateToken parses tokenString and verifies signature, issuer and expiry.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session token")
	}

	return claims, nil
}
