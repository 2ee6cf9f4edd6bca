package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

type authService struct {
	store    repository.Store
	hasher   service.PasswordHasher
	tokenSvc service.TokenService
	logger   *slog.Logger

	mu   sync.RWMutex
	user *entity.User
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Store    repository.Store
	Hasher   service.PasswordHasher
	TokenSvc service.TokenService
	Logger   *slog.Logger
}

// NewAuthService creates the mocked authentication boundary, restoring any
// persisted session user.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	s := &authService{
		store:    params.Store,
		hasher:   params.Hasher,
		tokenSvc: params.TokenSvc,
		logger:   params.Logger,
	}

	var user entity.User
	if loadState(context.Background(), s.store, repository.KeyUser, &user, s.logger) {
		s.user = &user
	}

	return s
}

// Register creates the session user with a hashed password and issues a token.
func (s *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.SessionOutput, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleCustomer
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidRole
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrTokenGeneration.WithDetails(err.Error())
	}

	user := entity.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		Role:         role,
		PasswordHash: hash,
	}

	s.mu.Lock()
	s.user = &user
	saveState(ctx, s.store, repository.KeyUser, user, s.logger)
	s.mu.Unlock()

	return s.session(&user)
}

// Login verifies credentials against the stored user when one matches the
// email. With no matching record the mock flow accepts the credentials and
// fabricates the user; authentication is a stand-in, not an enforcement layer.
func (s *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleCustomer
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidRole
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user != nil && strings.EqualFold(s.user.Email, input.Email) {
		if s.user.PasswordHash != "" && !s.hasher.Check(input.Password, s.user.PasswordHash) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		user := *s.user

		return s.session(&user)
	}

	user := entity.User{
		ID:    uuid.NewString(),
		Name:  nameFromEmail(input.Email),
		Email: input.Email,
		Role:  role,
	}
	s.user = &user
	saveState(ctx, s.store, repository.KeyUser, user, s.logger)

	return s.session(&user)
}

// Logout removes the session user.
func (s *authService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.store.Delete(ctx, repository.KeyUser); err != nil {
		s.logger.Warn("failed to delete persisted user", slog.Any("error", err))
	}

	return nil
}

// CurrentUser returns the session user, or ErrNotLoggedIn.
func (s *authService) CurrentUser(ctx context.Context) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil, domainerrors.ErrNotLoggedIn
	}

	return sanitize(s.user), nil
}

// session builds the output for a fresh login or registration.
func (s *authService) session(user *entity.User) (*usecase.SessionOutput, error) {
	token, err := s.tokenSvc.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		return nil, domainerrors.ErrTokenGeneration.WithDetails(err.Error())
	}

	return &usecase.SessionOutput{User: sanitize(user), AccessToken: token}, nil
}

// sanitize strips the password hash before a user record leaves the service.
func sanitize(user *entity.User) *entity.User {
	out := *user
	out.PasswordHash = ""

	return &out
}

func nameFromEmail(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}

	return email
}
