package content

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"
)

// MemoryStore is an in-memory Store for tests and previews.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
	nextID  int
	now     func() time.Time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]Record),
		now:     time.Now,
	}
}

// Verify MemoryStore implements Store at compile time.
var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) List(_ context.Context, kind Kind, filter Filter) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Record
	for _, r := range s.records {
		if r.Kind == kind && filter.Matches(r) {
			out = append(out, r)
		}
	}
	SortRecords(out)
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, kind Kind, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	if !ok || r.Kind != kind {
		return Record{}, ErrNotFound
	}
	return r, nil
}

func (s *MemoryStore) GetBySlug(_ context.Context, kind Kind, slug string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.Kind == kind && r.Slug == slug {
			return r, nil
		}
	}
	return Record{}, ErrNotFound
}

func (s *MemoryStore) Create(_ context.Context, r Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slugTaken(r.Kind, r.Slug, "") {
		return Record{}, ErrConflict
	}
	if r.ID == "" {
		s.nextID++
		r.ID = strconv.Itoa(s.nextID)
	} else if _, exists := s.records[r.ID]; exists {
		return Record{}, ErrConflict
	}
	now := s.now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	s.records[r.ID] = r
	return r, nil
}

func (s *MemoryStore) Update(_ context.Context, kind Kind, id string, p Patch) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok || r.Kind != kind {
		return Record{}, ErrNotFound
	}
	p.Apply(&r)
	if s.slugTaken(kind, r.Slug, id) {
		return Record{}, ErrConflict
	}
	r.UpdatedAt = s.now().UTC()
	s.records[id] = r
	return r, nil
}

func (s *MemoryStore) Delete(_ context.Context, kind Kind, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok || r.Kind != kind {
		return ErrNotFound
	}
	delete(s.records, id)
	return nil
}

func (s *MemoryStore) Reorder(_ context.Context, kind Kind, updates []OrderUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range updates {
		r, ok := s.records[u.ID]
		if !ok || r.Kind != kind {
			return ErrNotFound
		}
	}
	now := s.now().UTC()
	for _, u := range updates {
		r := s.records[u.ID]
		r.Order = u.Order
		r.UpdatedAt = now
		s.records[u.ID] = r
	}
	return nil
}

func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) slugTaken(kind Kind, slug, exceptID string) bool {
	for id, r := range s.records {
		if id != exceptID && r.Kind == kind && r.Slug == slug {
			return true
		}
	}
	return false
}

// SortRecords orders records by Order, then Title, then ID.
func SortRecords(rs []Record) {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].Order != rs[j].Order {
			return rs[i].Order < rs[j].Order
		}
		if rs[i].Title != rs[j].Title {
			return rs[i].Title < rs[j].Title
		}
		return rs[i].ID < rs[j].ID
	})
}
