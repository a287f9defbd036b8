package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/listings/listings-api/internal/listing"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory Store. It backs the unit tests and is used by
// the server when no Mongo URI is configured. Documents keep insertion order
// so skip/limit behave like a natural-order Mongo scan.
type MemoryRepo struct {
	mu    sync.RWMutex
	order []listing.ID
	store map[listing.ID]listing.Listing
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[listing.ID]listing.Listing)}
}

// Seed stores documents as-is, keyed by their existing _id. It is how
// string-keyed legacy data gets into the repo.
func (m *MemoryRepo) Seed(docs ...listing.Listing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range docs {
		id, ok := listing.IDOf(d)
		if !ok {
			return fmt.Errorf("seed document has unsupported _id %v", d[listing.FieldID])
		}
		if _, exists := m.store[id]; !exists {
			m.order = append(m.order, id)
		}
		m.store[id] = clone(d)
	}
	return nil
}

func (m *MemoryRepo) FindOne(_ context.Context, id listing.ID) (listing.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.store[id]
	if !ok {
		return nil, listing.ErrNotFound
	}
	return clone(d), nil
}

func (m *MemoryRepo) FindMany(_ context.Context, skip, limit int64) ([]listing.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []listing.Listing{}
	if skip < 0 {
		return nil, fmt.Errorf("negative skip %d", skip)
	}
	for i := skip; i < int64(len(m.order)); i++ {
		// limit 0 means no limit, as in Mongo
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		out = append(out, clone(m.store[m.order[i]]))
	}
	return out, nil
}

func (m *MemoryRepo) InsertOne(_ context.Context, f listing.Fields) (listing.ID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := listing.NativeID(primitive.NewObjectID())
	d := listing.Listing(f.Set())
	d[listing.FieldID] = id.Value()
	m.store[id] = d
	m.order = append(m.order, id)
	return id, nil
}

func (m *MemoryRepo) UpdateOne(_ context.Context, id listing.ID, f listing.Fields) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.store[id]
	if !ok {
		return listing.ErrNotFound
	}
	for k, v := range f.Set() {
		d[k] = v
	}
	return nil
}

func (m *MemoryRepo) DeleteOne(_ context.Context, id listing.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return listing.ErrNotFound
	}
	delete(m.store, id)
	for i, o := range m.order {
		if o == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of stored documents.
func (m *MemoryRepo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}

func clone(d listing.Listing) listing.Listing {
	out := make(listing.Listing, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
