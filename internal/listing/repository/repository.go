package repository

import (
	"context"

	"github.com/listings/listings-api/internal/listing"
)

// Store is the document store the listing service runs against.
// Implementations must be safe for concurrent use and report misses
// as listing.ErrNotFound.
type Store interface {
	FindOne(ctx context.Context, id listing.ID) (listing.Listing, error)
	FindMany(ctx context.Context, skip, limit int64) ([]listing.Listing, error)
	InsertOne(ctx context.Context, f listing.Fields) (listing.ID, error)
	UpdateOne(ctx context.Context, id listing.ID, f listing.Fields) error
	DeleteOne(ctx context.Context, id listing.ID) error
}

var (
	_ Store = (*MemoryRepo)(nil)
	_ Store = (*MongoRepo)(nil)
)
