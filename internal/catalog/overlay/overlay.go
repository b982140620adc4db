// Package overlay layers process-lifetime mutations over a read-only base
// collection. The base is recomputed from the legacy source on every read; the
// overlay records what was created, updated, or deleted locally and wins over
// whatever the base produces for the same id.
package overlay

import "sync"

// Entity is anything the overlay can key by id.
type Entity interface {
	EntityID() string
}

// Store holds the local record map plus the deletion tombstone set for one
// entity type. It is safe for concurrent use; the contract for racing writers
// is last-writer-wins per id with no cross-field atomicity.
//
// Lifecycle per id:
//   - Put on create/update stores the record and clears any tombstone
//     (a deleted id is resurrected by writing it again);
//   - Delete drops the local record and tombstones the id, masking it even if
//     the base keeps producing it.
//
// Nothing here persists: the overlay lives exactly as long as the owning
// store instance.
type Store[T Entity] struct {
	mu      sync.RWMutex
	local   map[string]T
	order   []string // first-Put order of locally known ids
	ordered map[string]struct{}
	deleted map[string]struct{}
}

func NewStore[T Entity]() *Store[T] {
	return &Store[T]{
		local:   make(map[string]T),
		ordered: make(map[string]struct{}),
		deleted: make(map[string]struct{}),
	}
}

// Put records a local create or update and clears the id's tombstone.
// An id keeps its original order slot across delete/put cycles, so order
// membership is tracked separately from the record map.
func (s *Store[T]) Put(record T) {
	id := record.EntityID()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, known := s.ordered[id]; !known {
		s.order = append(s.order, id)
		s.ordered[id] = struct{}{}
	}
	s.local[id] = record
	delete(s.deleted, id)
}

// Delete removes the id from the local store and tombstones it. Deleting an
// id the store has never seen still tombstones it, masking future base reads.
func (s *Store[T]) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.local, id)
	s.deleted[id] = struct{}{}
}

// Merge combines a freshly computed base collection with the overlay:
// base records keep their order, locally written records replace base records
// in place, purely local records are appended in first-write order, and
// tombstoned ids are dropped throughout. Merge is idempotent and allocates a
// new slice; it never mutates base.
func (s *Store[T]) Merge(base []T) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	merged := make([]T, 0, len(base)+len(s.local))
	seen := make(map[string]struct{}, len(base))

	for _, record := range base {
		id := record.EntityID()
		if _, gone := s.deleted[id]; gone {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if local, ok := s.local[id]; ok {
			merged = append(merged, local)
			continue
		}
		merged = append(merged, record)
	}

	for _, id := range s.order {
		local, ok := s.local[id]
		if !ok {
			continue // deleted after being written
		}
		if _, inBase := seen[id]; inBase {
			continue
		}
		if _, gone := s.deleted[id]; gone {
			continue
		}
		merged = append(merged, local)
	}

	return merged
}
