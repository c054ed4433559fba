package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/infos-dinos/dinos-api/internal/api/metrics"
	"github.com/infos-dinos/dinos-api/internal/core/domain"
	"github.com/infos-dinos/dinos-api/internal/core/ports"
)

// DinosaurHandler handles HTTP requests for the dinosaur collection.
type DinosaurHandler struct {
	service ports.DinosaurService
}

func NewDinosaurHandler(service ports.DinosaurService) *DinosaurHandler {
	return &DinosaurHandler{service: service}
}

// List handles GET /api/dinosaures. Public, no auth.
//
// @Summary      List all dinosaurs
// @Tags         dinosaurs
// @Produce      json
// @Success      200  {array}   domain.Dinosaur
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/dinosaures [get]
func (h *DinosaurHandler) List(c echo.Context) error {
	dinosaurs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if dinosaurs == nil {
		dinosaurs = []domain.Dinosaur{}
	}
	return c.JSON(http.StatusOK, dinosaurs)
}

// Create handles POST /api/dinosaures.
//
// @Summary      Add a new dinosaur
// @Tags         dinosaurs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.Dinosaur  true  "Dinosaur fields; nomComplet is required, id is assigned by the server"
// @Success      201   {object}  domain.Dinosaur
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/dinosaures [post]
func (h *DinosaurHandler) Create(c echo.Context) error {
	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body.")
	}

	dino, err := h.service.Create(c.Request().Context(), fields)
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, dino)
}

// Update handles PUT /api/dinosaures/:id. Supplied fields are merged over the
// stored record; the id in the path always wins over one in the body.
//
// @Summary      Update a dinosaur
// @Tags         dinosaurs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Dinosaur ID"
// @Param        body  body      domain.Dinosaur  true  "Fields to merge over the stored record"
// @Success      200   {object}  domain.Dinosaur
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/dinosaures/{id} [put]
func (h *DinosaurHandler) Update(c echo.Context) error {
	id, err := dinosaurID(c)
	if err != nil {
		return err
	}

	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body.")
	}

	dino, err := h.service.Update(c.Request().Context(), id, fields)
	if err != nil {
		if errors.Is(err, domain.ErrDinosaurNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Dinosaur with ID %d not found.", id))
		}
		return err
	}

	metrics.MutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, dino)
}

// Delete handles DELETE /api/dinosaures/:id.
//
// @Summary      Delete a dinosaur
// @Tags         dinosaurs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Dinosaur ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/dinosaures/{id} [delete]
func (h *DinosaurHandler) Delete(c echo.Context) error {
	id, err := dinosaurID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrDinosaurNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Dinosaur with ID %d not found.", id))
		}
		return err
	}

	metrics.MutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Dinosaur with ID %d deleted successfully.", id),
	})
}

// dinosaurID parses the :id path segment. A non-numeric segment is a 400,
// distinct from the 404 of an unknown id.
func dinosaurID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid dinosaur ID format.")
	}
	return id, nil
}
