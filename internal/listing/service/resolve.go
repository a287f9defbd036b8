package service

import (
	"context"
	"errors"

	"github.com/listings/listings-api/internal/listing"
	"github.com/listings/listings-api/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resolve maps a path id onto the representation actually stored.
//
// The collection holds seed documents keyed by plain strings next to
// documents created here, keyed by ObjectIDs. The raw string is tried first;
// on a miss it is parsed as ObjectID hex and tried again. A string that is
// not valid hex yields listing.ErrInvalidID, a valid ObjectID with no document
// yields listing.ErrNotFound. Stored ids are never rewritten.
func (s *Service) Resolve(ctx context.Context, raw string) (listing.ID, listing.Listing, error) {
	id := listing.StringID(raw)
	doc, err := s.store.FindOne(ctx, id)
	if err == nil {
		logger.Debugf("resolved listing id %q as string", raw)
		return id, doc, nil
	}
	if !errors.Is(err, listing.ErrNotFound) {
		return listing.ID{}, nil, err
	}

	oid, perr := primitive.ObjectIDFromHex(raw)
	if perr != nil {
		return listing.ID{}, nil, listing.ErrInvalidID
	}
	id = listing.NativeID(oid)
	doc, err = s.store.FindOne(ctx, id)
	if err != nil {
		return listing.ID{}, nil, err
	}
	logger.Debugf("resolved listing id %q as ObjectID", raw)
	return id, doc, nil
}
