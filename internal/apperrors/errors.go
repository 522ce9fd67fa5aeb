// Package apperrors defines the error taxonomy shared across the service.
package apperrors

import "errors"

var (
	// ErrDuplicateIdentity is returned when registering an email that is
	// already taken (case-insensitive).
	ErrDuplicateIdentity = errors.New("email already registered")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so callers cannot probe for account existence.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Token verification failures. The HTTP layer collapses all four into
	// a single unauthenticated response; the specific kind is only logged.
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrTokenExpired     = errors.New("token expired")
	ErrUnknownSubject   = errors.New("token subject no longer exists")
	ErrUnauthenticated  = errors.New("unauthenticated")

	// ErrProfileExists is returned when a patient creates a profile while
	// already having one; the unique user_id constraint backs it.
	ErrProfileExists = errors.New("patient profile already exists")

	ErrForbidden = errors.New("forbidden")
	ErrNotFound  = errors.New("not found")
)

// IsTokenError reports whether err is one of the token verification
// failure kinds that collapse to unauthenticated at the boundary.
func IsTokenError(err error) bool {
	return errors.Is(err, ErrMalformedToken) ||
		errors.Is(err, ErrInvalidSignature) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrUnknownSubject) ||
		errors.Is(err, ErrUnauthenticated)
}
