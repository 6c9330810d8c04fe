package ports

import "github.com/casavia/realty-system/internal/core/domain"

// TokenService issues and checks stateless bearer tokens. Tokens are never
// persisted; validity is proven per request from the token alone plus a
// credential-store lookup.
type TokenService interface {
	// Issue produces a signed token for the user with the configured expiry.
	Issue(user *domain.User) (string, error)
	// ExtractSubject returns the token's subject email. Failures are
	// distinguished as domain.ErrTokenExpired, ErrTokenMalformed or
	// ErrTokenSignature.
	ExtractSubject(token string) (string, error)
	// Validate re-verifies the token and confirms its subject still matches
	// the given user's email.
	Validate(token string, expected *domain.User) error
}
