// Package store implements the user account stores. Accounts live in the
// curated Postgres database, never in the legacy source.
package store

import (
	"context"

	"sciport/internal/domain"
)

// CreateUserInput carries the fields needed to persist a new account.
type CreateUserInput struct {
	Email        string
	FullName     string
	PasswordHash string
	Role         domain.Role
}

// UserStore persists portal accounts. FindByEmail and FindByID return
// sentinel.ErrNotFound when no account matches.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
}
