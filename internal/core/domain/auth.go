package domain

import "errors"

// There is exactly one administrator account, fixed at configuration time.
// This is deliberately not a user-management system.

// Credential failures collapse into a single sentinel so the API never leaks
// whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("incorrect credentials")

var ErrMissingToken = errors.New("missing authorization header")
var ErrMalformedToken = errors.New("malformed authorization header")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("invalid token")

// ErrNoSigningSecret is returned when token issuance is attempted without a
// configured JWT secret.
var ErrNoSigningSecret = errors.New("no token signing secret configured")

// Admin is the single statically configured administrator identity.
type Admin struct {
	Username     string
	PasswordHash string // bcrypt
}
