package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/infos-dinos/dinos-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenService issues and verifies the short-lived HS256 tokens that guard
// mutating routes. Tokens are stateless: validity is purely signature plus
// expiry, there is no session table and no revocation.
type TokenService struct {
	secret   string
	tokenTTL time.Duration
}

func NewTokenService(secret string, tokenTTL time.Duration) *TokenService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &TokenService{secret: secret, tokenTTL: tokenTTL}
}

// Issue signs a token embedding the given identity, expiring tokenTTL from now.
func (s *TokenService) Issue(identity string) (string, error) {
	if s.secret == "" {
		return "", domain.ErrNoSigningSecret
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"username": identity,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}

// Verify decodes the token and checks signature and expiry. Expiry is
// reported as domain.ErrTokenExpired so callers can tell the client to log in
// again; every other failure collapses to domain.ErrTokenInvalid.
func (s *TokenService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return "", domain.ErrTokenInvalid
	}

	identity, _ := claims["username"].(string)
	if identity == "" {
		return "", domain.ErrTokenInvalid
	}
	return identity, nil
}
