package domain

import (
	"errors"
	"strings"
)

// FieldID and FieldName are the two record fields the API gives meaning to.
// Everything else (famille, periodeGeologique, regimeAlimentaire, …) is
// carried through untouched.
const (
	FieldID   = "id"
	FieldName = "nomComplet"
)

var ErrDinosaurNotFound = errors.New("dinosaur not found")
var ErrInvalidDinosaur = errors.New("invalid dinosaur data")
var ErrDataNotFound = errors.New("dinosaurs data not found")
var ErrStorageUnavailable = errors.New("dinosaurs data unavailable")
var ErrCorruptData = errors.New("dinosaurs data is corrupt")

// Dinosaur is a single encyclopedia record. Records are schemaless JSON
// objects: the store only assigns the id and requires a non-empty nomComplet,
// any other field round-trips as-is.
type Dinosaur map[string]any

// ID returns the record identifier, tolerating the numeric types a JSON
// decode can produce. ok is false when the id is absent or not numeric.
func (d Dinosaur) ID() (id int, ok bool) {
	switch v := d[FieldID].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

// Name returns the display name, trimmed. Empty when absent or not a string.
func (d Dinosaur) Name() string {
	s, _ := d[FieldName].(string)
	return strings.TrimSpace(s)
}

// SetID forces the record identifier, overriding any client-supplied value.
func (d Dinosaur) SetID(id int) {
	d[FieldID] = id
}

// Clone returns a shallow copy so callers can merge without aliasing the
// stored record.
func (d Dinosaur) Clone() Dinosaur {
	out := make(Dinosaur, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Merge lays the supplied fields over a copy of the record. The merge is
// shallow: a nested object in fields replaces the stored one wholesale.
func (d Dinosaur) Merge(fields map[string]any) Dinosaur {
	out := d.Clone()
	for k, v := range fields {
		out[k] = v
	}
	return out
}

// NextID computes the identifier for a new record: max existing id plus one,
// or 1 for an empty collection.
func NextID(dinosaurs []Dinosaur) int {
	maxID := 0
	for _, d := range dinosaurs {
		if id, ok := d.ID(); ok && id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
