package service

import (
	"context"

	"github.com/listings/listings-api/internal/listing"
	"github.com/listings/listings-api/internal/listing/repository"
)

// Service holds the listing operations used by the handler layer. Per-document
// operations take an id already resolved by Resolve.
type Service struct {
	store repository.Store
}

func NewService(store repository.Store) *Service {
	return &Service{store: store}
}

// NewMemoryService returns a Service over a fresh in-memory repository.
func NewMemoryService() (*Service, *repository.MemoryRepo) {
	repo := repository.NewMemoryRepo()
	return NewService(repo), repo
}

// Create inserts a new listing and returns the id minted by the store.
func (s *Service) Create(ctx context.Context, f listing.Fields) (listing.ID, error) {
	return s.store.InsertOne(ctx, f)
}

// List returns one page of the collection in natural order.
func (s *Service) List(ctx context.Context, p listing.Page) ([]listing.Listing, error) {
	return s.store.FindMany(ctx, p.Offset(), p.Limit())
}

// Update replaces the three content fields and returns the stored document.
func (s *Service) Update(ctx context.Context, id listing.ID, f listing.Fields) (listing.Listing, error) {
	if err := s.store.UpdateOne(ctx, id, f); err != nil {
		return nil, err
	}
	return s.store.FindOne(ctx, id)
}

// Delete removes the listing with the given id.
func (s *Service) Delete(ctx context.Context, id listing.ID) error {
	return s.store.DeleteOne(ctx, id)
}
