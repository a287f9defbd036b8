package handler

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/listings/listings-api/internal/listing"
)

// bindFields decodes a create/update body. The body must be a JSON object
// carrying every key in listing.RequiredFields; values are taken as-is,
// null included. Partial bodies are rejected as a whole.
func bindFields(c *gin.Context) (listing.Fields, error) {
	if c.Request.Body == nil {
		return listing.Fields{}, listing.MissingFieldsError()
	}
	var body map[string]any
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return listing.Fields{}, listing.MissingFieldsError()
	}
	for _, k := range listing.RequiredFields {
		if _, ok := body[k]; !ok {
			return listing.Fields{}, listing.MissingFieldsError()
		}
	}
	return listing.Fields{
		Name:        numbers(body[listing.FieldName]),
		Description: numbers(body[listing.FieldDescription]),
		ListingURL:  numbers(body[listing.FieldListingURL]),
	}, nil
}

// numbers replaces json.Number values with int64 when the literal is an
// integer in range, float64 otherwise, so stored values keep the client's
// integers exactly.
func numbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, e := range t {
			t[k] = numbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = numbers(e)
		}
		return t
	default:
		return v
	}
}
