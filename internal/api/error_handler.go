package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/infos-dinos/dinos-api/internal/core/domain"
)

// messageResponse is the canonical envelope for all API errors.
type messageResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected and storage errors internally without leaking details
//     to the client.
//   - Renders a consistent JSON envelope: {"message": "<text>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, messageResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors: handler rejections, bind failures, router 404s.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrDataNotFound):
		return http.StatusNotFound, "Dinosaurs data not found."
	case errors.Is(err, domain.ErrDinosaurNotFound):
		return http.StatusNotFound, "Dinosaur not found."
	case errors.Is(err, domain.ErrInvalidDinosaur):
		return http.StatusBadRequest, "Invalid dinosaur data: 'nomComplet' is required and cannot be empty."
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Incorrect credentials."
	case errors.Is(err, domain.ErrCorruptData):
		logError(err, log, c)
		return http.StatusInternalServerError, "Failed to parse dinosaurs data."
	case errors.Is(err, domain.ErrStorageUnavailable):
		logError(err, log, c)
		return http.StatusInternalServerError, "Failed to access dinosaurs data."
	}

	// Unexpected error: log the real cause, return a generic message.
	logError(err, log, c)
	return http.StatusInternalServerError, "Internal server error."
}

func logError(err error, log zerolog.Logger, c echo.Context) {
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("request failed")
}
