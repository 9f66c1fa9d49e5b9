package usecase

import (
	"context"
	"time"

	"bizhub/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// SessionOutput is an issued session.
type SessionOutput struct {
	Token     string
	ExpiresAt time.Time
	UserID    uuid.UUID
	Role      entity.Role
	Name      string
	Email     string
}

// SessionUsecase authenticates business users and operators.
type SessionUsecase interface {
	LoginBusinessUser(ctx context.Context, input *LoginInput) (*SessionOutput, error)
	LoginAdmin(ctx context.Context, input *LoginInput) (*SessionOutput, error)
}
