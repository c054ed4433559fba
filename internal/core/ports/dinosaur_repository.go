package ports

import (
	"context"

	"github.com/infos-dinos/dinos-api/internal/core/domain"
)

// DinosaurRepository abstracts the persisted collection document. The file
// implementation reads and rewrites the whole document on every call;
// swapping in a transactional store must not require handler changes.
type DinosaurRepository interface {
	// Load returns all records in document order. Errors: ErrDataNotFound
	// when the document does not exist, ErrCorruptData when it does not
	// parse as an array, ErrStorageUnavailable on other I/O failures.
	Load(ctx context.Context) ([]domain.Dinosaur, error)
	// Save replaces the whole document with the given collection.
	Save(ctx context.Context, dinosaurs []domain.Dinosaur) error
}
