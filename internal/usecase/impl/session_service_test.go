package impl

import (
	"context"
	"testing"
	"time"

	"bizhub/internal/domain/entity"
	domainerrors "bizhub/internal/domain/errors"
	"bizhub/internal/domain/repository"
	"bizhub/internal/errors"
	mockRepo "bizhub/internal/mocks/repository"
	mockSvc "bizhub/internal/mocks/service"
	"bizhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionMocks struct {
	userRepo     *mockRepo.MockBusinessUserRepository
	adminRepo    *mockRepo.MockAdminUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func newSessionServiceForTest(t *testing.T) (usecase.SessionUsecase, *sessionMocks) {
	t.Helper()

	m := &sessionMocks{
		userRepo:     mockRepo.NewMockBusinessUserRepository(t),
		adminRepo:    mockRepo.NewMockAdminUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}

	svc := NewSessionService(SessionServiceParams{
		UserRepo:     m.userRepo,
		AdminRepo:    m.adminRepo,
		Hasher:       m.hasher,
		TokenService: m.tokenService,
		Logger:       newDiscardLogger(),
	})

	return svc, m
}

func TestSessionService_LoginBusinessUser_Success(t *testing.T) {
	svc, m := newSessionServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Now().Add(24 * time.Hour)

	m.userRepo.EXPECT().
		FindByEmail(ctx, "owner@example.com").
		Return(&entity.BusinessUser{ID: userID, Name: "Owner", Email: "owner@example.com", PasswordHash: "hash"}, nil)
	m.hasher.EXPECT().Check("s3cret", "hash").Return(true)
	m.tokenService.EXPECT().GenerateSessionToken(userID, "business").Return("jwt-token", expiresAt, nil)

	out, err := svc.LoginBusinessUser(ctx, &usecase.LoginInput{Email: " Owner@Example.com ", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", out.Token)
	assert.Equal(t, expiresAt, out.ExpiresAt)
	assert.Equal(t, userID, out.UserID)
	assert.Equal(t, entity.RoleBusiness, out.Role)
	assert.Equal(t, "Owner", out.Name)
}

func TestSessionService_LoginBusinessUser_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		svc, m := newSessionServiceForTest(t)
		m.userRepo.EXPECT().FindByEmail(context.Background(), "nobody@example.com").Return(nil, repository.ErrBusinessUserNotFound)

		_, err := svc.LoginBusinessUser(context.Background(), &usecase.LoginInput{Email: "nobody@example.com", Password: "x"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, m := newSessionServiceForTest(t)
		m.userRepo.EXPECT().
			FindByEmail(context.Background(), "owner@example.com").
			Return(&entity.BusinessUser{ID: uuid.New(), PasswordHash: "hash"}, nil)
		m.hasher.EXPECT().Check("wrong", "hash").Return(false)

		_, err := svc.LoginBusinessUser(context.Background(), &usecase.LoginInput{Email: "owner@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("repository failure is not masked", func(t *testing.T) {
		svc, m := newSessionServiceForTest(t)
		m.userRepo.EXPECT().FindByEmail(context.Background(), "owner@example.com").Return(nil, errors.New("db down"))

		_, err := svc.LoginBusinessUser(context.Background(), &usecase.LoginInput{Email: "owner@example.com", Password: "x"})

		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestSessionService_LoginAdmin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, m := newSessionServiceForTest(t)
		adminID := uuid.New()
		expiresAt := time.Now().Add(time.Hour)

		m.adminRepo.EXPECT().
			FindByEmail(context.Background(), "ops@example.com").
			Return(&entity.AdminUser{ID: adminID, Name: "Ops", Email: "ops@example.com", PasswordHash: "hash"}, nil)
		m.hasher.EXPECT().Check("pw", "hash").Return(true)
		m.tokenService.EXPECT().GenerateSessionToken(adminID, "admin").Return("admin-token", expiresAt, nil)

		out, err := svc.LoginAdmin(context.Background(), &usecase.LoginInput{Email: "ops@example.com", Password: "pw"})

		require.NoError(t, err)
		assert.Equal(t, entity.RoleAdmin, out.Role)
		assert.Equal(t, "admin-token", out.Token)
	})

	t.Run("unknown admin", func(t *testing.T) {
		svc, m := newSessionServiceForTest(t)
		m.adminRepo.EXPECT().FindByEmail(context.Background(), "ops@example.com").Return(nil, repository.ErrAdminUserNotFound)

		_, err := svc.LoginAdmin(context.Background(), &usecase.LoginInput{Email: "ops@example.com", Password: "pw"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("token failure", func(t *testing.T) {
		svc, m := newSessionServiceForTest(t)
		adminID := uuid.New()

		m.adminRepo.EXPECT().
			FindByEmail(context.Background(), "ops@example.com").
			Return(&entity.AdminUser{ID: adminID, PasswordHash: "hash"}, nil)
		m.hasher.EXPECT().Check("pw", "hash").Return(true)
		m.tokenService.EXPECT().GenerateSessionToken(adminID, "admin").Return("", time.Time{}, errors.New("no key"))

		_, err := svc.LoginAdmin(context.Background(), &usecase.LoginInput{Email: "ops@example.com", Password: "pw"})

		require.Error(t, err)
	})
}
