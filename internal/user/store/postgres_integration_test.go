//go:build integration

package store_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"sciport/internal/domain"
	"sciport/internal/user/store"
	"sciport/pkg/platform/sentinel"
	"sciport/pkg/testutil/containers"
)

type PostgresUserStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.Postgres
}

func TestPostgresUserStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresUserStoreSuite))
}

func (s *PostgresUserStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresUserStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "users"))
}

func (s *PostgresUserStoreSuite) TestCreateAndFind() {
	ctx := context.Background()

	created, err := s.store.Create(ctx, store.CreateUserInput{
		Email:        "integration@example.com",
		FullName:     "Integration User",
		PasswordHash: "$2a$10$hash",
		Role:         domain.RoleStaff,
	})
	s.Require().NoError(err)
	s.NotEmpty(created.ID)
	s.Equal(domain.RoleStaff, created.Role)
	s.False(created.CreatedAt.IsZero())

	byEmail, err := s.store.FindByEmail(ctx, "integration@example.com")
	s.Require().NoError(err)
	s.Equal(created.ID, byEmail.ID)

	byID, err := s.store.FindByID(ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.Email, byID.Email)
}

func (s *PostgresUserStoreSuite) TestNotFound() {
	ctx := context.Background()

	_, err := s.store.FindByEmail(ctx, "missing@example.com")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

// TestConcurrentUniqueEmailViolation verifies that concurrent registration
// attempts with the same email result in exactly one account.
func (s *PostgresUserStoreSuite) TestConcurrentUniqueEmailViolation() {
	ctx := context.Background()
	const goroutines = 20

	var wg sync.WaitGroup
	var successCount, conflictCount atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.store.Create(ctx, store.CreateUserInput{
				Email:        "race@example.com",
				FullName:     "Race User",
				PasswordHash: "$2a$10$hash",
				Role:         domain.RoleViewer,
			})
			if err == nil {
				successCount.Add(1)
			} else if errors.Is(err, sentinel.ErrAlreadyUsed) {
				conflictCount.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), successCount.Load(), "exactly one create should succeed")
	s.Equal(int32(goroutines-1), conflictCount.Load())
}
