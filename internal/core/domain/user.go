package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	RoleCustomer      = "CUSTOMER"
	RolePropertyOwner = "PROPERTY_OWNER"
	RoleAdmin         = "ADMIN"
)

// AuthorityPrefix turns a role into its coarse permission label,
// e.g. ADMIN -> ROLE_ADMIN.
const AuthorityPrefix = "ROLE_"

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrRoleNotAllowed = errors.New("role not allowed")
var ErrTooManyAttempts = errors.New("too many login attempts")

// ValidRole reports whether role is one of the enumerated account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RolePropertyOwner, RoleAdmin:
		return true
	}
	return false
}

// NormalizeEmail canonicalizes an email address for storage and lookup.
// Every component that compares emails goes through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Authority returns the permission label derived from the user's role.
func (u *User) Authority() string {
	return AuthorityPrefix + strings.ToUpper(u.Role)
}
