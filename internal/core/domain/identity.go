package domain

import "errors"

var ErrUnauthenticated = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")

// Identity is the resolved caller for a single request. The zero value is the
// anonymous identity. It is constructed once by the authentication gate and
// passed explicitly; it never outlives the request.
type Identity struct {
	UserID      string
	Email       string
	Role        string
	Authorities []string
}

// Anonymous is the identity of an unauthenticated request.
var Anonymous = Identity{}

// NewIdentity derives a request identity from a stored user.
func NewIdentity(u *User) Identity {
	return Identity{
		UserID:      u.ID,
		Email:       u.Email,
		Role:        u.Role,
		Authorities: []string{u.Authority()},
	}
}

// IsAnonymous reports whether the request carries no authenticated user.
func (id Identity) IsAnonymous() bool {
	return id.UserID == ""
}

// HasAuthority reports whether the identity carries the given authority label.
func (id Identity) HasAuthority(authority string) bool {
	for _, a := range id.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the identity carries the ADMIN authority.
func (id Identity) IsAdmin() bool {
	return id.HasAuthority(AuthorityPrefix + RoleAdmin)
}
