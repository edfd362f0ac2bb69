package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

// SeedAccount describes one canonical account the seeder guarantees to exist.
type SeedAccount struct {
	Email    string
	Password string
	Role     string
}

// Seeder ensures the canonical roles and accounts exist so the system is never
// unusable on an empty credential store. Safe to run on every startup: existing
// roles and users, credentials included, are left untouched.
type Seeder struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewSeeder(repo ports.UserRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{repo: repo, logger: logger}
}

// Run seeds the canonical roles and the given accounts, in order. Roles are
// seeded first because account creation requires the role to exist.
func (s *Seeder) Run(ctx context.Context, accounts []SeedAccount) error {
	for _, role := range []string{domain.RoleAdministrator, domain.RoleCustomer} {
		if err := s.repo.EnsureRole(ctx, role); err != nil {
			return fmt.Errorf("ensure role %s: %w", role, err)
		}
	}

	for _, acct := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acct.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		if err := s.repo.EnsureUserWithRole(ctx, acct.Email, string(hash), acct.Role); err != nil {
			return fmt.Errorf("ensure user %s: %w", acct.Email, err)
		}
		s.logger.Debug().Str("email", acct.Email).Str("role", acct.Role).Msg("seed account ensured")
	}

	s.logger.Info().Int("accounts", len(accounts)).Msg("bootstrap seeding complete")
	return nil
}

// DefaultSeedAccounts returns the canonical admin plus the stock customer
// accounts, with the admin credentials taken from configuration.
func DefaultSeedAccounts(adminEmail, adminPassword string) []SeedAccount {
	return []SeedAccount{
		{Email: adminEmail, Password: adminPassword, Role: domain.RoleAdministrator},
		{Email: "customer@gmail.com", Password: "P@ssw0rd1", Role: domain.RoleCustomer},
		{Email: "customer2@gmail.com", Password: "P@ssw0rd1", Role: domain.RoleCustomer},
	}
}
