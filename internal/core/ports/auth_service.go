package ports

import "context"

// AuthService authenticates the administrator and hands out bearer tokens.
type AuthService interface {
	// Login verifies the credentials against the configured admin identity
	// and returns a signed token. Any credential mismatch yields
	// domain.ErrInvalidCredentials, never a more specific cause.
	Login(ctx context.Context, username, password string) (string, error)
}

// TokenVerifier checks a bearer token ahead of protected handlers.
type TokenVerifier interface {
	// Verify decodes the token and checks signature and expiry. It returns
	// the embedded identity, domain.ErrTokenExpired, or domain.ErrTokenInvalid.
	Verify(token string) (identity string, err error)
}
