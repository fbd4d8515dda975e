package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Key is the storage-assigned document identifier.
type Key = primitive.ObjectID

// NilKey is the zero Key, used when no document is being excluded or
// addressed.
var NilKey = primitive.NilObjectID

// ErrInvalidKey is returned by ParseKey for input that is not a valid
// document identifier.
var ErrInvalidKey = errors.New("invalid key format")

// ParseKey parses an external identifier string into a Key. It fails on
// empty input or on anything that does not match the storage engine's
// ObjectID format.
func ParseKey(raw string) (Key, error) {
	if raw == "" {
		return NilKey, ErrInvalidKey
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return NilKey, ErrInvalidKey
	}
	return id, nil
}
