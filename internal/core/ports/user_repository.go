package ports

import (
	"context"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

// UserRepository is the persistence boundary for identities and roles.
// Implementations must reject duplicate emails atomically so that concurrent
// registrations with the same address resolve to exactly one success.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)

	// EnsureRole creates the named role when absent. Idempotent.
	EnsureRole(ctx context.Context, name string) error
	// EnsureUserWithRole creates the user with the given password hash and role
	// when no user with that email exists. An existing user is left untouched,
	// credentials included. The role must already exist.
	EnsureUserWithRole(ctx context.Context, email, passwordHash, role string) error
}
