package service

import (
	"context"
	"crypto/subtle"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/infos-dinos/dinos-api/internal/core/domain"
)

// AuthService verifies the single configured admin identity and issues tokens
// on success.
type AuthService struct {
	admin  domain.Admin
	tokens *TokenService
	logger zerolog.Logger
}

func NewAuthService(admin domain.Admin, tokens *TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{admin: admin, tokens: tokens, logger: logger}
}

// Login checks the credentials and returns a signed token. The bcrypt compare
// runs even when the username does not match, so a wrong username and a wrong
// password take the same path and return the same error.
func (s *AuthService) Login(_ context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)) == nil
	if !userOK || !passOK {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(s.admin.Username)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to issue token")
		return "", err
	}

	s.logger.Info().Str("username", s.admin.Username).Msg("admin logged in")
	return token, nil
}
