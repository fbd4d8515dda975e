package repositories

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"lapak/internal/models"
)

// MemoryRepository is an in-memory implementation of Repository. It backs
// the handler tests and local runs without a database, and mirrors the
// storage engine's behavior including insertion-order listing and the
// unchanged-replace outcome.
type MemoryRepository[T any, P Document[T]] struct {
	mu    sync.RWMutex
	docs  map[models.Key]T
	order []models.Key
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository[T any, P Document[T]]() *MemoryRepository[T, P] {
	return &MemoryRepository[T, P]{docs: make(map[models.Key]T)}
}

// GetAll returns all documents in insertion order.
func (r *MemoryRepository[T, P]) GetAll(ctx context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := make([]T, 0, len(r.order))
	for _, id := range r.order {
		docs = append(docs, r.docs[id])
	}
	return docs, nil
}

// GetByID returns a copy of the document with the given key.
func (r *MemoryRepository[T, P]) GetByID(ctx context.Context, id models.Key) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &doc, nil
}

// Create stores a new document under a generated key.
func (r *MemoryRepository[T, P]) Create(ctx context.Context, doc *T) (models.Key, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID()
	P(doc).SetID(id)
	P(doc).Stamps().Stamp(time.Now().UTC())
	r.docs[id] = *doc
	r.order = append(r.order, id)
	return id, nil
}

// Replace overwrites the stored document, reporting Modified=false when the
// incoming payload is identical to the stored one.
func (r *MemoryRepository[T, P]) Replace(ctx context.Context, id models.Key, doc *T) (ReplaceResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.docs[id]
	if !ok {
		return ReplaceResult{}, nil
	}
	if P(doc).SameData(&existing) {
		return ReplaceResult{Matched: true}, nil
	}

	P(doc).SetID(id)
	ts := P(doc).Stamps()
	ts.CreatedAt = P(&existing).Stamps().CreatedAt
	ts.UpdatedAt = time.Now().UTC()
	r.docs[id] = *doc
	return ReplaceResult{Matched: true, Modified: true}, nil
}

// Delete removes the document and reports whether one existed.
func (r *MemoryRepository[T, P]) Delete(ctx context.Context, id models.Key) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		return false, nil
	}
	delete(r.docs, id)
	for i, k := range r.order {
		if k == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// MemoryUserRepository extends the in-memory repository with the username
// lookup.
type MemoryUserRepository struct {
	*MemoryRepository[models.User, *models.User]
}

// NewMemoryUserRepository creates an empty in-memory user repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{NewMemoryRepository[models.User, *models.User]()}
}

// UsernameTaken reports whether a user other than exclude already has the
// username.
func (r *MemoryUserRepository) UsernameTaken(ctx context.Context, username string, exclude models.Key) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.docs {
		if u.Username == username && u.ID != exclude {
			return true, nil
		}
	}
	return false, nil
}
