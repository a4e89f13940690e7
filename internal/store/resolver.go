package store

import (
	"github.com/google/uuid"

	"github.com/jbjulia/mccmnc/internal/models"
)

// KeyResolver picks the insertion key for a record. The candidate key is the
// record PLMN. When the candidate is taken, a random suffix is appended
// ("<PLMN>-<suffix>") until the key is free, so no row is ever dropped.
type KeyResolver struct {
	suffix func() string
}

func NewKeyResolver() *KeyResolver {
	return &KeyResolver{suffix: uuid.NewString}
}

// NewKeyResolverWithSuffix uses fn to generate disambiguation suffixes.
func NewKeyResolverWithSuffix(fn func() string) *KeyResolver {
	return &KeyResolver{suffix: fn}
}

// Resolve returns the key r should be stored under and whether the candidate
// key collided with an existing entry.
func (k *KeyResolver) Resolve(s *Store, r models.Record) (string, bool) {
	candidate := r.PLMN()
	if !s.Has(candidate) {
		return candidate, false
	}

	for {
		key := candidate + "-" + k.suffix()
		if !s.Has(key) {
			return key, true
		}
	}
}

// Insert resolves the key for r and inserts it into s.
func (k *KeyResolver) Insert(s *Store, r models.Record) (string, bool, error) {
	key, collided := k.Resolve(s, r)
	if err := s.Insert(key, r); err != nil {
		return "", collided, err
	}
	return key, collided, nil
}
