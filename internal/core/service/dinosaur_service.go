package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/infos-dinos/dinos-api/internal/core/domain"
	"github.com/infos-dinos/dinos-api/internal/core/ports"
)

// DinosaurService implements the CRUD contract over the collection document.
// Every mutation is a full read-modify-write of the document; mu serializes
// those cycles so two concurrent mutations cannot overwrite each other's
// changes within this process.
type DinosaurService struct {
	repo   ports.DinosaurRepository
	logger zerolog.Logger
	mu     sync.Mutex
}

func NewDinosaurService(repo ports.DinosaurRepository, logger zerolog.Logger) *DinosaurService {
	return &DinosaurService{repo: repo, logger: logger}
}

// List returns all records in document order.
func (s *DinosaurService) List(ctx context.Context) ([]domain.Dinosaur, error) {
	return s.repo.Load(ctx)
}

// Create validates, assigns the next id and appends the record. A missing
// document is treated as an empty collection so the first create bootstraps
// the file.
func (s *DinosaurService) Create(ctx context.Context, fields map[string]any) (domain.Dinosaur, error) {
	dino := domain.Dinosaur(fields)
	if dino == nil || dino.Name() == "" {
		return nil, domain.ErrInvalidDinosaur
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dinosaurs, err := s.repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		dinosaurs = nil
	}

	dino = dino.Clone()
	dino.SetID(domain.NextID(dinosaurs))

	if err := s.repo.Save(ctx, append(dinosaurs, dino)); err != nil {
		return nil, err
	}

	id, _ := dino.ID()
	s.logger.Info().Int("id", id).Str("nomComplet", dino.Name()).Msg("dinosaur created")
	return dino, nil
}

// Update merges the supplied fields over the stored record. The id always
// comes from the path argument, never from the body.
func (s *DinosaurService) Update(ctx context.Context, id int, fields map[string]any) (domain.Dinosaur, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dinosaurs, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(dinosaurs, id)
	if idx < 0 {
		return nil, domain.ErrDinosaurNotFound
	}

	merged := dinosaurs[idx].Merge(fields)
	merged.SetID(id)
	if merged.Name() == "" {
		return nil, domain.ErrInvalidDinosaur
	}
	dinosaurs[idx] = merged

	if err := s.repo.Save(ctx, dinosaurs); err != nil {
		return nil, err
	}

	s.logger.Info().Int("id", id).Msg("dinosaur updated")
	return merged, nil
}

// Delete removes the single record with the given id.
func (s *DinosaurService) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dinosaurs, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	idx := indexOf(dinosaurs, id)
	if idx < 0 {
		return domain.ErrDinosaurNotFound
	}

	dinosaurs = append(dinosaurs[:idx], dinosaurs[idx+1:]...)

	if err := s.repo.Save(ctx, dinosaurs); err != nil {
		return err
	}

	s.logger.Info().Int("id", id).Msg("dinosaur deleted")
	return nil
}

func indexOf(dinosaurs []domain.Dinosaur, id int) int {
	for i, d := range dinosaurs {
		if got, ok := d.ID(); ok && got == id {
			return i
		}
	}
	return -1
}
