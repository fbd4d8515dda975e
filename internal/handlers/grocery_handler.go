package handlers

import (
	"github.com/gofiber/fiber/v2"

	"lapak/internal/models"
	"lapak/internal/repositories"
	"lapak/internal/validation"
)

// NewGroceryHandler creates the CRUD handler for the groceries collection.
func NewGroceryHandler(repo repositories.Repository[models.Grocery], opts Options) *Resource[models.Grocery] {
	return newResource[models.Grocery](
		"/groceries",
		Labels{Display: "Grocery", Item: "Grocery", Plural: "groceries"},
		repo,
		decodeGrocery,
		opts,
	)
}

func decodeGrocery(c *fiber.Ctx) (*models.Grocery, []string, error) {
	var in models.GroceryInput
	if err := c.BodyParser(&in); err != nil {
		return nil, nil, err
	}
	if violations := validation.Check(&in); len(violations) > 0 {
		return nil, violations, nil
	}
	doc := in.Model()
	return &doc, nil, nil
}
