package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"lapak/internal/models"
)

// MongoRepository is the MongoDB implementation of Repository, one instance
// per collection.
type MongoRepository[T any, P Document[T]] struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a repository over the given collection.
func NewMongoRepository[T any, P Document[T]](coll *mongo.Collection) *MongoRepository[T, P] {
	return &MongoRepository[T, P]{coll: coll}
}

// GetAll retrieves every document in the collection in insertion order.
func (r *MongoRepository[T, P]) GetAll(ctx context.Context) ([]T, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, unavailable(err)
	}
	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, unavailable(err)
	}
	return docs, nil
}

// GetByID retrieves a single document by its key.
func (r *MongoRepository[T, P]) GetByID(ctx context.Context, id models.Key) (*T, error) {
	var doc T
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, unavailable(err)
	}
	return &doc, nil
}

// Create inserts a new document, stamps its timestamps and returns the
// generated key. ErrNotAcknowledged is returned when the storage engine does
// not confirm the write.
func (r *MongoRepository[T, P]) Create(ctx context.Context, doc *T) (models.Key, error) {
	P(doc).Stamps().Stamp(time.Now().UTC())
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return models.NilKey, unavailable(err)
	}
	id, ok := res.InsertedID.(models.Key)
	if !ok {
		return models.NilKey, ErrNotAcknowledged
	}
	P(doc).SetID(id)
	return id, nil
}

// Replace overwrites all fields of the document with the given key. When the
// incoming payload equals the stored one (key and timestamps excluded) no
// write is performed and the result reports Modified=false. The read and the
// write are two separate storage calls, not a transaction.
func (r *MongoRepository[T, P]) Replace(ctx context.Context, id models.Key, doc *T) (ReplaceResult, error) {
	var existing T
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&existing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ReplaceResult{}, nil
	}
	if err != nil {
		return ReplaceResult{}, unavailable(err)
	}

	if P(doc).SameData(&existing) {
		return ReplaceResult{Matched: true}, nil
	}

	P(doc).SetID(id)
	ts := P(doc).Stamps()
	ts.CreatedAt = P(&existing).Stamps().CreatedAt
	ts.UpdatedAt = time.Now().UTC()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return ReplaceResult{}, unavailable(err)
	}
	return ReplaceResult{Matched: res.MatchedCount > 0, Modified: res.ModifiedCount > 0}, nil
}

// Delete removes the document with the given key and reports whether one
// existed. Deleting an already-deleted key is not an error.
func (r *MongoRepository[T, P]) Delete(ctx context.Context, id models.Key) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, unavailable(err)
	}
	return res.DeletedCount > 0, nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// MongoUserRepository extends the generic repository with the username
// lookup over the user collection.
type MongoUserRepository struct {
	*MongoRepository[models.User, *models.User]
}

// NewMongoUserRepository creates a user repository over the given
// collection.
func NewMongoUserRepository(coll *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{NewMongoRepository[models.User, *models.User](coll)}
}

// UsernameTaken reports whether a user other than exclude already has the
// username.
func (r *MongoUserRepository) UsernameTaken(ctx context.Context, username string, exclude models.Key) (bool, error) {
	filter := bson.M{"username": username}
	if !exclude.IsZero() {
		filter["_id"] = bson.M{"$ne": exclude}
	}
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, unavailable(err)
	}
	return n > 0, nil
}
