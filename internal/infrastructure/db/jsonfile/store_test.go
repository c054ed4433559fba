package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/infos-dinos/dinos-api/internal/core/domain"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "dinosaurs.json"))
}

func TestStore_Load_Missing(t *testing.T) {
	store := tempStore(t)

	if _, err := store.Load(context.Background()); !errors.Is(err, domain.ErrDataNotFound) {
		t.Fatalf("expected ErrDataNotFound, got %v", err)
	}
}

func TestStore_Load_Corrupt(t *testing.T) {
	store := tempStore(t)
	if err := os.WriteFile(store.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if _, err := store.Load(context.Background()); !errors.Is(err, domain.ErrCorruptData) {
		t.Fatalf("expected ErrCorruptData, got %v", err)
	}
}

func TestStore_Load_NotAnArray(t *testing.T) {
	store := tempStore(t)
	if err := os.WriteFile(store.Path(), []byte(`{"id": 1}`), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if _, err := store.Load(context.Background()); !errors.Is(err, domain.ErrCorruptData) {
		t.Fatalf("expected ErrCorruptData for non-array document, got %v", err)
	}
}

func TestStore_SaveAndLoad_RoundTrip(t *testing.T) {
	store := tempStore(t)
	in := []domain.Dinosaur{
		{
			"id":                1,
			"nomComplet":        "Tyrannosaurus Rex",
			"famille":           "Tyrannosauridae",
			"regimeAlimentaire": map[string]any{"type": "Carnivore", "icone": "🥩"},
		},
		{"id": 2, "nomComplet": "Diplodocus"},
	}

	if err := store.Save(context.Background(), in); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	out, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
	if id, _ := out[0].ID(); id != 1 {
		t.Fatalf("id did not round-trip: %v", out[0]["id"])
	}
	if out[0].Name() != "Tyrannosaurus Rex" {
		t.Fatalf("name did not round-trip: %q", out[0].Name())
	}
	regime, ok := out[0]["regimeAlimentaire"].(map[string]any)
	if !ok || regime["icone"] != "🥩" {
		t.Fatalf("nested field did not round-trip: %v", out[0]["regimeAlimentaire"])
	}
}

func TestStore_Save_PrettyPrints(t *testing.T) {
	store := tempStore(t)
	if err := store.Save(context.Background(), []domain.Dinosaur{{"id": 1, "nomComplet": "Rex"}}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Fatalf("document is not indented:\n%s", data)
	}
}

func TestStore_Save_EmptyCollectionIsArray(t *testing.T) {
	store := tempStore(t)
	if err := store.Save(context.Background(), nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(data)), "[") {
		t.Fatalf("empty collection must serialize as an array, got:\n%s", data)
	}

	out, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(out))
	}
}

func TestStore_Save_LeavesNoTempFiles(t *testing.T) {
	store := tempStore(t)
	if err := store.Save(context.Background(), []domain.Dinosaur{{"id": 1, "nomComplet": "Rex"}}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the document in the directory, found %d entries", len(entries))
	}
}
