package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/infos-dinos/dinos-api/internal/api/metrics"
	"github.com/infos-dinos/dinos-api/internal/core/domain"
	"github.com/infos-dinos/dinos-api/internal/core/ports"
)

// IdentityKey is the echo context key under which Auth stores the verified
// admin identity for downstream handlers.
const IdentityKey = "identity"

// Auth guards mutating routes with a bearer token check.
//
// Status code contract: an absent or malformed Authorization header is 401,
// a well-formed header carrying an invalid or expired token is 403. The
// scheme literal "Bearer" is matched case-sensitively.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is missing.")
			}

			scheme, token, found := strings.Cut(header, " ")
			if !found || scheme != "Bearer" || token == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("malformed_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header must be of the form 'Bearer <token>'.")
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.AuthRejectionsTotal.WithLabelValues("token_expired").Inc()
					return echo.NewHTTPError(http.StatusForbidden, "Token has expired, please log in again.")
				}
				metrics.AuthRejectionsTotal.WithLabelValues("token_invalid").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Token is invalid.")
			}

			c.Set(IdentityKey, identity)
			return next(c)
		}
	}
}
