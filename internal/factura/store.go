package factura

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/j2425716/facturador/internal/logger"
)

// Store persists the full invoice collection as a whole-file JSON snapshot.
// Every mutation rewrites the entire snapshot; there is no incremental log.
// The store assumes a single process: no file locking.
type Store struct {
	path string
	log  zerolog.Logger
}

// NewStore creates a store backed by the snapshot file at path.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		log:  logger.WithComponent("store"),
	}
}

// Path returns the snapshot file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted snapshot. An absent or empty file yields an empty
// collection with no error. A malformed snapshot is fail-soft: Load returns
// an empty collection together with a *LoadError so the caller can surface a
// warning instead of crashing.
func (s *Store) Load() ([]Invoice, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug().Str("file", s.path).Msg("No snapshot file, starting empty")
			return []Invoice{}, nil
		}
		return []Invoice{}, &LoadError{Path: s.path, Err: err}
	}

	if strings.TrimSpace(string(data)) == "" {
		return []Invoice{}, nil
	}

	var invoices []Invoice
	if err := json.Unmarshal(data, &invoices); err != nil {
		s.log.Warn().
			Err(err).
			Str("file", s.path).
			Msg("Snapshot is malformed, starting empty")
		return []Invoice{}, &LoadError{Path: s.path, Err: err}
	}

	s.log.Debug().
		Str("file", s.path).
		Int("invoices", len(invoices)).
		Msg("Snapshot loaded")
	return invoices, nil
}

// Save serializes the full collection and replaces the prior snapshot. The
// new content is fully serialized in memory and written to a temporary file
// first, so the prior snapshot is never truncated before the replacement
// exists. A failed Save is a hard *StoreError: the mutation was not durably
// committed.
func (s *Store) Save(invoices []Invoice) error {
	data, err := json.MarshalIndent(invoices, "", "    ")
	if err != nil {
		return &StoreError{Op: "Save", Err: err, Details: "serializing invoices"}
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".facturas-*.json")
	if err != nil {
		return &StoreError{Op: "Save", Err: err, Details: "creating temporary snapshot"}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &StoreError{Op: "Save", Err: err, Details: "writing snapshot"}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &StoreError{Op: "Save", Err: err, Details: "closing snapshot"}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return &StoreError{Op: "Save", Err: err, Details: "replacing snapshot"}
	}

	s.log.Debug().
		Str("file", s.path).
		Int("invoices", len(invoices)).
		Int("bytes", len(data)).
		Msg("Snapshot saved")
	return nil
}

// NextID returns the next available invoice id: 1 on an empty collection,
// max(ids)+1 otherwise. If the highest-id invoice was deleted, its id may be
// handed out again; that is documented behavior, not a bug.
func NextID(invoices []Invoice) int {
	next := 1
	for _, inv := range invoices {
		if inv.ID >= next {
			next = inv.ID + 1
		}
	}
	return next
}

// RemoveArtifact deletes the rendered document of a deleted invoice.
// Best-effort: an already-absent file is not an error, and any other failure
// is logged rather than propagated.
func (s *Store) RemoveArtifact(inv Invoice) {
	if inv.ArtifactPath == "" {
		return
	}
	if err := os.Remove(inv.ArtifactPath); err != nil && !os.IsNotExist(err) {
		s.log.Warn().
			Err(err).
			Int("id", inv.ID).
			Str("artifact", inv.ArtifactPath).
			Msg("Failed to remove invoice artifact")
	}
}
