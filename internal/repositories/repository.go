package repositories

import (
	"context"
	"errors"

	"lapak/internal/models"
)

var (
	// ErrNotFound means no document has the requested key.
	ErrNotFound = errors.New("document not found")
	// ErrUnavailable means the backing store could not be reached.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrNotAcknowledged means the storage engine did not confirm a write.
	ErrNotAcknowledged = errors.New("write not acknowledged")
)

// ReplaceResult reports the outcome of a full-document replace. Matched is
// false when no document has the key; Modified is false when the document
// matched but the new payload is identical to the stored one.
type ReplaceResult struct {
	Matched  bool
	Modified bool
}

// Document is satisfied by a pointer to any stored entity type.
type Document[T any] interface {
	*T
	GetID() models.Key
	SetID(models.Key)
	Stamps() *models.Timestamps
	SameData(other *T) bool
}

// Repository defines the storage operations shared by every collection.
// Implementations are pure pass-throughs to the storage engine; callers
// guarantee documents passed in already passed validation.
type Repository[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id models.Key) (*T, error)
	Create(ctx context.Context, doc *T) (models.Key, error)
	Replace(ctx context.Context, id models.Key, doc *T) (ReplaceResult, error)
	Delete(ctx context.Context, id models.Key) (bool, error)
}

// UserRepository adds the username lookup backing the uniqueness check.
type UserRepository interface {
	Repository[models.User]

	// UsernameTaken reports whether a user other than exclude already has
	// the username. Pass models.NilKey to check all documents.
	UsernameTaken(ctx context.Context, username string, exclude models.Key) (bool, error)
}
