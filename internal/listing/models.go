package listing

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field names written by create and update.
const (
	FieldID          = "_id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldListingURL  = "listing_url"
)

// RequiredFields is the key set every create/update body must carry.
var RequiredFields = []string{FieldName, FieldDescription, FieldListingURL}

// Listing is a single document of the listings collection.
// Seed documents carry many more fields than the three this service writes,
// so the model stays schemaless and reads return whatever is stored.
type Listing map[string]any

// Fields is the validated content written by create and update.
// Values are arbitrary JSON values.
type Fields struct {
	Name        any
	Description any
	ListingURL  any
}

// Set returns the fields as a bson document suitable for insert or $set.
func (f Fields) Set() bson.M {
	return bson.M{
		FieldName:        f.Name,
		FieldDescription: f.Description,
		FieldListingURL:  f.ListingURL,
	}
}

// ID is the identifier of a stored listing. Seed data uses plain strings,
// documents created through the API carry an ObjectID. Exactly one of the two
// is set; the zero ID is the empty string id.
type ID struct {
	native bool
	str    string
	oid    primitive.ObjectID
}

// StringID wraps a plain string identifier.
func StringID(s string) ID { return ID{str: s} }

// NativeID wraps a store-minted ObjectID.
func NativeID(oid primitive.ObjectID) ID { return ID{native: true, oid: oid} }

// IsNative reports whether the id is an ObjectID.
func (id ID) IsNative() bool { return id.native }

// Value returns the value stored in the _id field.
func (id ID) Value() any {
	if id.native {
		return id.oid
	}
	return id.str
}

// String returns the raw string or the ObjectID hex.
func (id ID) String() string {
	if id.native {
		return id.oid.Hex()
	}
	return id.str
}

// IDOf extracts the identifier of a stored listing. ok is false when the
// _id value is neither a string nor an ObjectID.
func IDOf(l Listing) (ID, bool) {
	switch v := l[FieldID].(type) {
	case string:
		return StringID(v), true
	case primitive.ObjectID:
		return NativeID(v), true
	}
	return ID{}, false
}
