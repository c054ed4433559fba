package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/infos-dinos/dinos-api/internal/core/domain"
	"github.com/infos-dinos/dinos-api/internal/core/ports"
)

// HealthHandler serves the health probes.
// GET /health is a liveness check and returns 200 immediately.
// GET /health/ready additionally verifies the collection document is readable.
type HealthHandler struct {
	repo ports.DinosaurRepository
}

func NewHealthHandler(repo ports.DinosaurRepository) *HealthHandler {
	return &HealthHandler{repo: repo}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthHandler) Readiness(c echo.Context) error {
	deps := make(map[string]dependencyStatus)
	healthy := true

	// A missing document is not a readiness failure: the first authenticated
	// create bootstraps the file.
	if _, err := h.repo.Load(c.Request().Context()); err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		deps["datastore"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		deps["datastore"] = dependencyStatus{Status: "ok"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
