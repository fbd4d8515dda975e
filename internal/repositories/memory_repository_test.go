package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"lapak/internal/models"
	"lapak/internal/repositories"
)

func newGroceryRepo() *repositories.MemoryRepository[models.Grocery, *models.Grocery] {
	return repositories.NewMemoryRepository[models.Grocery, *models.Grocery]()
}

func TestCreateAndGetByID(t *testing.T) {
	ctx := context.Background()
	repo := newGroceryRepo()

	doc := models.Grocery{Name: "Milk", Quantity: 2, Price: 3.49}
	id, err := repo.Create(ctx, &doc)
	assert.NoError(t, err)
	assert.False(t, id.IsZero())
	assert.Equal(t, id, doc.ID)
	assert.False(t, doc.CreatedAt.IsZero())
	assert.Equal(t, doc.CreatedAt, doc.UpdatedAt)

	got, err := repo.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, doc, *got)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := newGroceryRepo()

	_, err := repo.GetByID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGetAllPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := newGroceryRepo()

	names := []string{"Milk", "Bread", "Eggs"}
	for _, name := range names {
		doc := models.Grocery{Name: name, Quantity: 1, Price: 1}
		_, err := repo.Create(ctx, &doc)
		assert.NoError(t, err)
	}

	docs, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, docs, 3)
	for i, name := range names {
		assert.Equal(t, name, docs[i].Name)
	}
}

func TestReplaceUnmatchedKey(t *testing.T) {
	repo := newGroceryRepo()

	doc := models.Grocery{Name: "Milk", Quantity: 2, Price: 3.49}
	res, err := repo.Replace(context.Background(), primitive.NewObjectID(), &doc)
	assert.NoError(t, err)
	assert.Equal(t, repositories.ReplaceResult{}, res)
}

func TestReplaceIdenticalPayloadIsUnmodified(t *testing.T) {
	ctx := context.Background()
	repo := newGroceryRepo()

	doc := models.Grocery{Name: "Milk", Quantity: 2, Price: 3.49}
	id, err := repo.Create(ctx, &doc)
	assert.NoError(t, err)

	same := models.Grocery{Name: "Milk", Quantity: 2, Price: 3.49}
	res, err := repo.Replace(ctx, id, &same)
	assert.NoError(t, err)
	assert.Equal(t, repositories.ReplaceResult{Matched: true, Modified: false}, res)

	// Unchanged replaces must not move updatedAt.
	got, err := repo.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, doc.UpdatedAt, got.UpdatedAt)
}

func TestReplaceOverwritesAndKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := newGroceryRepo()

	doc := models.Grocery{Name: "Milk", Quantity: 2, Price: 3.49}
	id, err := repo.Create(ctx, &doc)
	assert.NoError(t, err)

	updated := models.Grocery{Name: "Milk", Quantity: 5, Price: 3.49}
	res, err := repo.Replace(ctx, id, &updated)
	assert.NoError(t, err)
	assert.Equal(t, repositories.ReplaceResult{Matched: true, Modified: true}, res)

	got, err := repo.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, float64(5), got.Quantity)
	assert.Equal(t, doc.CreatedAt, got.CreatedAt)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestDeleteOutcomeIsIdempotentInEffect(t *testing.T) {
	ctx := context.Background()
	repo := newGroceryRepo()

	doc := models.Grocery{Name: "Milk", Quantity: 2, Price: 3.49}
	id, err := repo.Create(ctx, &doc)
	assert.NoError(t, err)

	deleted, err := repo.Delete(ctx, id)
	assert.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// Second delete of the same key reports nothing deleted.
	deleted, err = repo.Delete(ctx, id)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestUsernameTaken(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryUserRepository()

	doc := models.User{Firstname: "John", Lastname: "Doe", Username: "johndoe", Password: "secret123"}
	id, err := repo.Create(ctx, &doc)
	assert.NoError(t, err)

	taken, err := repo.UsernameTaken(ctx, "johndoe", models.NilKey)
	assert.NoError(t, err)
	assert.True(t, taken)

	// A document never conflicts with itself on replace.
	taken, err = repo.UsernameTaken(ctx, "johndoe", id)
	assert.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.UsernameTaken(ctx, "someoneelse", models.NilKey)
	assert.NoError(t, err)
	assert.False(t, taken)
}
