package impl

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

// fakeHasher marks hashes with a prefix so Check can verify without any real
// crypto work.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenService returns a canned token, or fails when broken.
type fakeTokenService struct {
	broken bool
}

func (f *fakeTokenService) GenerateToken(userID string, role string) (string, error) {
	if f.broken {
		return "", errors.New("signer unavailable")
	}

	return "token-" + userID + "-" + role, nil
}

func (f *fakeTokenService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return nil, errors.New("not implemented")
}

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	store    *fakeStore
	tokenSvc *fakeTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	store := newFakeStore()
	tokenSvc := &fakeTokenService{}
	service := NewAuthService(AuthServiceParams{
		Store:    store,
		Hasher:   fakeHasher{},
		TokenSvc: tokenSvc,
		Logger:   testLogger(),
	})

	return authServiceFixtures{service: service, store: store, tokenSvc: tokenSvc}
}

func TestAuthService_Register_CreatesSessionUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	session, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)
	require.NotNil(t, session.User)
	assert.Equal(t, "Ada", session.User.Name)
	assert.Equal(t, entity.RoleCustomer, session.User.Role)
	assert.NotEmpty(t, session.AccessToken)
	assert.Empty(t, session.User.PasswordHash, "hash must never leave the service")

	_, ok := fx.store.raw(repository.KeyUser)
	assert.True(t, ok)
}

func TestAuthService_Register_RejectsUnknownRole(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "pw",
		Role:     entity.Role("superuser"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestAuthService_Login_VerifiesStoredPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct",
	})
	require.NoError(t, err)

	_, err = fx.service.Login(ctx, usecase.LoginInput{
		Email:    "ada@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	session, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "ADA@example.com",
		Password: "correct",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", session.User.Name)
}

func TestAuthService_Login_FabricatesUnknownUser(t *testing.T) {
	fx := createTestAuthService(t)

	session, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Email:    "grace@example.com",
		Password: "anything",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "grace", session.User.Name)
	assert.Equal(t, entity.RoleAdmin, session.User.Role)
	assert.NotEmpty(t, session.AccessToken)
}

func TestAuthService_Logout_ClearsSession(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "grace@example.com",
		Password: "pw",
	})
	require.NoError(t, err)

	require.NoError(t, fx.service.Logout(ctx))

	_, err = fx.service.CurrentUser(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrNotLoggedIn)

	_, ok := fx.store.raw(repository.KeyUser)
	assert.False(t, ok, "persisted user should be deleted on logout")
}

func TestAuthService_CurrentUser_WithoutSessionFails(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.CurrentUser(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrNotLoggedIn)
}

func TestAuthService_TokenFailureSurfaces(t *testing.T) {
	fx := createTestAuthService(t)
	fx.tokenSvc.broken = true

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Email:    "grace@example.com",
		Password: "pw",
	})
	assert.ErrorIs(t, err, domainerrors.ErrTokenGeneration)
}

func TestNewAuthService_RestoresPersistedUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "pw",
	})
	require.NoError(t, err)

	restored := NewAuthService(AuthServiceParams{
		Store:    fx.store,
		Hasher:   fakeHasher{},
		TokenSvc: fx.tokenSvc,
		Logger:   testLogger(),
	})

	user, err := restored.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
}
