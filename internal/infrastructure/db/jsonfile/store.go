// Package jsonfile persists the dinosaur collection as one pretty-printed
// JSON array on disk. The file is the sole source of truth: nothing is cached
// between requests, and every mutation rewrites the whole document.
package jsonfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"github.com/infos-dinos/dinos-api/internal/core/domain"
)

// Store implements ports.DinosaurRepository over a single JSON file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads and parses the whole document.
func (s *Store) Load(_ context.Context) ([]domain.Dinosaur, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrDataNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	var dinosaurs []domain.Dinosaur
	if err := json.Unmarshal(data, &dinosaurs); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptData, err)
	}
	return dinosaurs, nil
}

// Save replaces the document wholesale. The new content is written to a
// sibling temp file and renamed into place, so readers never observe a
// half-written document.
func (s *Store) Save(_ context.Context, dinosaurs []domain.Dinosaur) error {
	if dinosaurs == nil {
		dinosaurs = []domain.Dinosaur{}
	}

	data, err := json.MarshalIndent(dinosaurs, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".dinosaurs-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}
