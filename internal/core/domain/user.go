package domain

import "time"

// Canonical role names. Roles form a flat set of strings with no hierarchy;
// a role must exist before it can be assigned to a user.
const (
	RoleAdministrator = "Administrator"
	RoleCustomer      = "Customer"
)

// Password length bounds, inclusive.
const (
	PasswordMinLength = 6
	PasswordMaxLength = 20
)

// User models an account that can authenticate against the API.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the user holds the named role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// Role is a named permission tier.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ValidatePassword enforces the account password policy.
func ValidatePassword(password string) error {
	if len(password) < PasswordMinLength || len(password) > PasswordMaxLength {
		return ErrPasswordPolicy
	}
	return nil
}
