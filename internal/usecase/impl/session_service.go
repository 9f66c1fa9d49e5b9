// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "bizhub/internal/delivery/context"
	"bizhub/internal/domain/entity"
	domainerrors "bizhub/internal/domain/errors"
	"bizhub/internal/domain/repository"
	"bizhub/internal/domain/service"
	"bizhub/internal/errors"
	"bizhub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// SessionServiceParams holds the dependencies of the session service.
type SessionServiceParams struct {
	fx.In

	UserRepo     repository.BusinessUserRepository
	AdminRepo    repository.AdminUserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userRepo     repository.BusinessUserRepository
	adminRepo    repository.AdminUserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:     params.UserRepo,
		adminRepo:    params.AdminRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoginBusinessUser checks the password of a business user and issues a session.
func (srv *sessionService) LoginBusinessUser(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrBusinessUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to find business user")
	}
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Business login rejected", slog.String("user_id", user.ID.String()))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	return srv.issue(ctx, user.ID, entity.RoleBusiness, user.Name, user.Email)
}

// LoginAdmin checks the password of an operator and issues a session.
func (srv *sessionService) LoginAdmin(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	admin, err := srv.adminRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrAdminUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to find admin user")
	}
	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		srv.log(ctx).Warn("Admin login rejected", slog.String("admin_id", admin.ID.String()))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	return srv.issue(ctx, admin.ID, entity.RoleAdmin, admin.Name, admin.Email)
}

func (srv *sessionService) issue(ctx context.Context, userID uuid.UUID, role entity.Role, name, email string) (*usecase.SessionOutput, error) {
	token, expiresAt, err := srv.tokenService.GenerateSessionToken(userID, role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Info("Session issued",
		slog.String("user_id", userID.String()),
		slog.String("role", role.String()))

	return &usecase.SessionOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    userID,
		Role:      role,
		Name:      name,
		Email:     email,
	}, nil
}
