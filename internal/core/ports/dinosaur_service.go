package ports

import (
	"context"

	"github.com/infos-dinos/dinos-api/internal/core/domain"
)

// DinosaurService exposes the CRUD operations over the record collection.
type DinosaurService interface {
	// List returns all records in document order.
	List(ctx context.Context) ([]domain.Dinosaur, error)
	// Create validates the supplied fields (non-empty nomComplet), assigns
	// the next id and persists. A client-supplied id is ignored.
	Create(ctx context.Context, fields map[string]any) (domain.Dinosaur, error)
	// Update merges the supplied fields over the stored record, keeping the
	// id from the path. Errors: ErrDinosaurNotFound, ErrInvalidDinosaur when
	// the merged record would have an empty name.
	Update(ctx context.Context, id int, fields map[string]any) (domain.Dinosaur, error)
	// Delete removes the record with the given id, or ErrDinosaurNotFound.
	Delete(ctx context.Context, id int) error
}
