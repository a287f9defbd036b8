package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/listings/listings-api/internal/listing"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements Store on a MongoDB collection. Documents are decoded
// into bson.M so seed fields survive untouched; _id is matched with whatever
// representation the caller's ID carries.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func byID(id listing.ID) bson.M {
	return bson.M{listing.FieldID: id.Value()}
}

func (m *MongoRepo) FindOne(ctx context.Context, id listing.ID) (listing.Listing, error) {
	var d bson.M
	if err := m.col.FindOne(ctx, byID(id)).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, listing.ErrNotFound
		}
		return nil, fmt.Errorf("find listing %s: %w", id, err)
	}
	return listing.Listing(d), nil
}

func (m *MongoRepo) FindMany(ctx context.Context, skip, limit int64) ([]listing.Listing, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find listings: %w", err)
	}
	defer cur.Close(ctx)
	out := []listing.Listing{}
	for cur.Next(ctx) {
		var d bson.M
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode listing: %w", err)
		}
		out = append(out, listing.Listing(d))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate listings: %w", err)
	}
	return out, nil
}

func (m *MongoRepo) InsertOne(ctx context.Context, f listing.Fields) (listing.ID, error) {
	res, err := m.col.InsertOne(ctx, f.Set())
	if err != nil {
		return listing.ID{}, fmt.Errorf("insert listing: %w", err)
	}
	switch v := res.InsertedID.(type) {
	case primitive.ObjectID:
		return listing.NativeID(v), nil
	case string:
		return listing.StringID(v), nil
	}
	return listing.ID{}, fmt.Errorf("insert listing: unexpected _id type %T", res.InsertedID)
}

func (m *MongoRepo) UpdateOne(ctx context.Context, id listing.ID, f listing.Fields) error {
	res, err := m.col.UpdateOne(ctx, byID(id), bson.M{"$set": f.Set()})
	if err != nil {
		return fmt.Errorf("update listing %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return listing.ErrNotFound
	}
	return nil
}

func (m *MongoRepo) DeleteOne(ctx context.Context, id listing.ID) error {
	res, err := m.col.DeleteOne(ctx, byID(id))
	if err != nil {
		return fmt.Errorf("delete listing %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return listing.ErrNotFound
	}
	return nil
}
