package store

import (
	"iter"

	"github.com/jbjulia/mccmnc/internal/models"
	srvErrors "github.com/jbjulia/mccmnc/pkg/errors"
)

// Store maps unique keys to records and remembers insertion order.
type Store struct {
	keys    []string
	records map[string]models.Record
}

func NewStore() *Store {
	return &Store{
		records: make(map[string]models.Record),
	}
}

// Insert adds a record under key. A key already present is rejected with
// DuplicateKeyError and the existing record is kept.
func (s *Store) Insert(key string, r models.Record) error {
	if key == "" {
		return srvErrors.NewInvalidInputError("key", key, "must not be empty")
	}
	if _, ok := s.records[key]; ok {
		return srvErrors.NewDuplicateKeyError(key)
	}
	s.keys = append(s.keys, key)
	s.records[key] = r
	return nil
}

func (s *Store) Get(key string) (models.Record, bool) {
	r, ok := s.records[key]
	return r, ok
}

func (s *Store) Has(key string) bool {
	_, ok := s.records[key]
	return ok
}

func (s *Store) Len() int {
	return len(s.keys)
}

// Keys returns a copy of the keys in insertion order.
func (s *Store) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// All iterates over the entries in insertion order.
func (s *Store) All() iter.Seq2[string, models.Record] {
	return func(yield func(string, models.Record) bool) {
		for _, k := range s.keys {
			if !yield(k, s.records[k]) {
				return
			}
		}
	}
}
