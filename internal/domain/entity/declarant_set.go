package entity

import (
	"encoding/json"
	"slices"

	"github.com/google/uuid"
)

// DeclarantSet is the set of users who tied themselves to a shop by creating
// it or reporting against it. Membership is keyed by user id; IDs keeps the
// order in which users were first added.
type DeclarantSet struct {
	index map[uuid.UUID]struct{}
	order []uuid.UUID
}

// NewDeclarantSet builds a set from ids, dropping duplicates.
func NewDeclarantSet(ids ...uuid.UUID) DeclarantSet {
	var set DeclarantSet
	for _, id := range ids {
		set.Add(id)
	}

	return set
}

// Add inserts id and reports whether it was absent.
func (s *DeclarantSet) Add(id uuid.UUID) bool {
	if s.index == nil {
		s.index = make(map[uuid.UUID]struct{})
	}
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)

	return true
}

// Contains reports whether id is a declarant.
func (s DeclarantSet) Contains(id uuid.UUID) bool {
	_, ok := s.index[id]

	return ok
}

// Len returns the number of declarants.
func (s DeclarantSet) Len() int {
	return len(s.order)
}

// IDs returns a copy of the members in insertion order.
func (s DeclarantSet) IDs() []uuid.UUID {
	return slices.Clone(s.order)
}

// MarshalJSON renders the set as a plain array.
func (s DeclarantSet) MarshalJSON() ([]byte, error) {
	ids := s.order
	if ids == nil {
		ids = []uuid.UUID{}
	}

	return json.Marshal(ids)
}

// UnmarshalJSON accepts a plain array, dropping duplicates.
func (s *DeclarantSet) UnmarshalJSON(data []byte) error {
	var ids []uuid.UUID
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewDeclarantSet(ids...)

	return nil
}
