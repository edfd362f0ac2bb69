package ports

import (
	"context"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

// AuthService validates credentials and issues bearer tokens.
type AuthService interface {
	// Register creates a new Customer account. The password is checked against
	// policy before any persistence attempt.
	Register(ctx context.Context, email, password string) (*domain.User, error)
	// Login verifies the credentials and returns a signed token embedding the
	// user's identity and role claims. No token is ever issued for credentials
	// that fail verification.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
