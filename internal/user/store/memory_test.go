package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"sciport/internal/domain"
	"sciport/pkg/platform/sentinel"
)

type UserStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *UserStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestUserStoreSuite(t *testing.T) {
	suite.Run(t, new(UserStoreSuite))
}

func (s *UserStoreSuite) newInput(email string) CreateUserInput {
	return CreateUserInput{
		Email:        email,
		FullName:     "Test User",
		PasswordHash: "$2a$10$hash",
		Role:         domain.RoleViewer,
	}
}

func (s *UserStoreSuite) TestCreateAndFind() {
	s.Run("creates and finds by id and email", func() {
		created, err := s.store.Create(s.ctx, s.newInput("user@example.com"))
		s.Require().NoError(err)
		s.NotEmpty(created.ID)
		s.False(created.CreatedAt.IsZero())

		byID, err := s.store.FindByID(s.ctx, created.ID)
		s.Require().NoError(err)
		s.Equal(created.Email, byID.Email)

		byEmail, err := s.store.FindByEmail(s.ctx, "user@example.com")
		s.Require().NoError(err)
		s.Equal(created.ID, byEmail.ID)
	})

	s.Run("lookup is case-insensitive on email", func() {
		_, err := s.store.Create(s.ctx, s.newInput("Mixed@Example.com"))
		s.Require().NoError(err)

		found, err := s.store.FindByEmail(s.ctx, "mixed@example.com")
		s.Require().NoError(err)
		s.Equal("mixed@example.com", found.Email)
	})

	s.Run("unknown lookups return ErrNotFound", func() {
		_, err := s.store.FindByID(s.ctx, "missing")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)

		_, err = s.store.FindByEmail(s.ctx, "missing@example.com")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *UserStoreSuite) TestEmailUniqueness() {
	_, err := s.store.Create(s.ctx, s.newInput("dup@example.com"))
	s.Require().NoError(err)

	_, err = s.store.Create(s.ctx, s.newInput("DUP@example.com"))
	s.Require().ErrorIs(err, sentinel.ErrAlreadyUsed)
}
