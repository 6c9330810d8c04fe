package domain

import "errors"

// Token failures are distinguished so the authentication gate can log the
// specific reason. All of them collapse to an unauthenticated request for
// the caller.
var ErrTokenExpired = errors.New("token expired")
var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenSignature = errors.New("token signature invalid")
var ErrTokenSubject = errors.New("token subject mismatch")
