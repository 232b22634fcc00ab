// Package fixture serves pre-recorded transaction responses for the offline explorer.
package fixture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/model"
)

// ErrNotFound is returned for an id that has no recorded response.
var ErrNotFound = errors.New("fixture not found")

// Store is an immutable set of recorded responses keyed by transaction id.
type Store struct {
	entries map[string]json.RawMessage
}

// Load reads a JSON object of id → raw response from path.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read decodes a JSON object of id → raw response from r.
// Entries are kept undecoded so that a malformed entry only fails its own lookup.
func Read(r io.Reader) (*Store, error) {
	entries := make(map[string]json.RawMessage)
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return &Store{entries: entries}, nil
}

// Len returns the number of recorded entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// FindDataFromID returns the recorded response for id.
func (s *Store) FindDataFromID(id string) (*model.TransactionWithAuthSigners, error) {
	payload, ok := s.entries[id]
	if !ok {
		return nil, fmt.Errorf("transaction %q: %w", id, ErrNotFound)
	}
	var res model.TransactionWithAuthSigners
	if err := json.Unmarshal(payload, &res); err != nil {
		return nil, fmt.Errorf("decode fixture %q: %w", id, err)
	}
	return &res, nil
}

// Transaction implements the loader source over the recorded set.
func (s *Store) Transaction(_ context.Context, id string) (*model.TransactionWithAuthSigners, error) {
	return s.FindDataFromID(id)
}
