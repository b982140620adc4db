// Package service implements account registration, login, logout and profile
// lookup. Tokens are stateless JWTs; logout works by putting the token id on
// the revocation list until the token expires.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"sciport/internal/auth/jwt"
	"sciport/internal/auth/password"
	"sciport/internal/auth/store/revocation"
	"sciport/internal/domain"
	"sciport/internal/user/store"
	dErrors "sciport/pkg/domain-errors"
	"sciport/pkg/platform/sentinel"
)

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=2"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is the login/registration response payload.
type AuthResult struct {
	Token string      `json:"token"`
	Role  domain.Role `json:"role"`
	User  domain.User `json:"user"`
}

// Profile is the /me response payload.
type Profile struct {
	User domain.User `json:"user"`
	Role domain.Role `json:"role"`
}

type Service struct {
	users    store.UserStore
	tokens   *jwt.Service
	trl      revocation.TokenRevocationList
	validate *validator.Validate
	logger   *slog.Logger
}

func New(users store.UserStore, tokens *jwt.Service, trl revocation.TokenRevocationList, logger *slog.Logger) *Service {
	return &Service{
		users:    users,
		tokens:   tokens,
		trl:      trl,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	if err := s.validate.Struct(input); err != nil {
		return AuthResult{}, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid registration input")
	}

	role := domain.Role(input.Role)
	if role == "" {
		role = domain.RoleViewer
	}
	if !role.Valid() {
		return AuthResult{}, dErrors.New(dErrors.CodeBadRequest, "unknown role")
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return AuthResult{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash password")
	}

	user, err := s.users.Create(ctx, store.CreateUserInput{
		Email:        strings.ToLower(input.Email),
		FullName:     input.Name,
		PasswordHash: hash,
		Role:         role,
	})
	if errors.Is(err, sentinel.ErrAlreadyUsed) {
		return AuthResult{}, dErrors.New(dErrors.CodeConflict, "user already exists")
	}
	if err != nil {
		return AuthResult{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create user")
	}

	token, _, err := s.tokens.GenerateAccessToken(user.ID, string(user.Role))
	if err != nil {
		return AuthResult{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue token")
	}

	s.logger.Info("user registered", "user_id", user.ID, "role", user.Role)
	return AuthResult{Token: token, Role: user.Role, User: *user}, nil
}

func (s *Service) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	if err := s.validate.Struct(input); err != nil {
		return AuthResult{}, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid login input")
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(input.Email))
	if errors.Is(err, sentinel.ErrNotFound) {
		return AuthResult{}, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	}
	if err != nil {
		return AuthResult{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}

	if !password.Compare(input.Password, user.PasswordHash) {
		s.logger.Warn("failed login attempt", "email", strings.ToLower(input.Email))
		return AuthResult{}, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	}

	token, _, err := s.tokens.GenerateAccessToken(user.ID, string(user.Role))
	if err != nil {
		return AuthResult{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue token")
	}

	return AuthResult{Token: token, Role: user.Role, User: *user}, nil
}

// Logout revokes the token id for the remaining token lifetime.
func (s *Service) Logout(ctx context.Context, tokenID string) error {
	if err := s.trl.RevokeToken(ctx, tokenID, s.tokens.ExpiresIn()); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to revoke token")
	}
	return nil
}

func (s *Service) Me(ctx context.Context, userID string) (Profile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return Profile{}, dErrors.New(dErrors.CodeUnauthorized, "unauthorized")
	}
	if err != nil {
		return Profile{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}
	return Profile{User: *user, Role: user.Role}, nil
}
