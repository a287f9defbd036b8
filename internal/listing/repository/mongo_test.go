package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/listings/listings-api/internal/listing"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("find one by string id", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "10006546"},
			{Key: "name", Value: "Ribeira Charming Duplex"},
		}))

		got, err := repo.FindOne(ctx, listing.StringID("10006546"))
		require.NoError(mt, err)
		require.Equal(mt, "10006546", got["_id"])
		require.Equal(mt, "Ribeira Charming Duplex", got["name"])

		filter := mt.GetStartedEvent().Command.Lookup("filter").Document()
		require.Equal(mt, "10006546", filter.Lookup("_id").StringValue())
	})

	mt.Run("find one miss", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.FindOne(ctx, listing.NativeID(primitive.NewObjectID()))
		require.ErrorIs(mt, err, listing.ErrNotFound)
	})

	mt.Run("find one by object id", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "name", Value: "A"},
		}))

		got, err := repo.FindOne(ctx, listing.NativeID(oid))
		require.NoError(mt, err)
		require.Equal(mt, oid, got["_id"])

		filter := mt.GetStartedEvent().Command.Lookup("filter").Document()
		require.Equal(mt, oid, filter.Lookup("_id").ObjectID())
	})

	mt.Run("find many sends skip and limit", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "doc3"}},
			bson.D{{Key: "_id", Value: "doc4"}},
		))

		got, err := repo.FindMany(ctx, 2, 2)
		require.NoError(mt, err)
		require.Len(mt, got, 2)
		require.Equal(mt, "doc3", got[0]["_id"])

		cmd := mt.GetStartedEvent().Command
		require.Equal(mt, int64(2), cmd.Lookup("skip").Int64())
		require.Equal(mt, int64(2), cmd.Lookup("limit").Int64())
	})

	mt.Run("insert returns object id", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := repo.InsertOne(ctx, listing.Fields{Name: "A", Description: "B", ListingURL: "C"})
		require.NoError(mt, err)
		require.True(mt, id.IsNative())
	})

	mt.Run("update matched and unmatched", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
		)

		f := listing.Fields{Name: "A", Description: "B", ListingURL: "C"}
		require.NoError(mt, repo.UpdateOne(ctx, listing.StringID("x"), f))
		require.ErrorIs(mt, repo.UpdateOne(ctx, listing.StringID("y"), f), listing.ErrNotFound)
	})

	mt.Run("delete matched and unmatched", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		require.NoError(mt, repo.DeleteOne(ctx, listing.StringID("x")))
		require.ErrorIs(mt, repo.DeleteOne(ctx, listing.StringID("x")), listing.ErrNotFound)
	})

	mt.Run("command errors are wrapped", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad value",
			Name:    "BadValue",
		}))

		err := repo.DeleteOne(ctx, listing.StringID("x"))
		require.Error(mt, err)
		require.False(mt, errors.Is(err, listing.ErrNotFound))
		var cmdErr mongo.CommandError
		require.True(mt, errors.As(err, &cmdErr))
	})
}
