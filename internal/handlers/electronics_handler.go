package handlers

import (
	"github.com/gofiber/fiber/v2"

	"lapak/internal/models"
	"lapak/internal/repositories"
	"lapak/internal/validation"
)

// NewElectronicsHandler creates the CRUD handler for the electronics
// collection.
func NewElectronicsHandler(repo repositories.Repository[models.Electronics], opts Options) *Resource[models.Electronics] {
	return newResource[models.Electronics](
		"/electronics",
		Labels{Display: "Electronics", Item: "Electronics item", Plural: "electronics"},
		repo,
		decodeElectronics,
		opts,
	)
}

func decodeElectronics(c *fiber.Ctx) (*models.Electronics, []string, error) {
	var in models.ElectronicsInput
	if err := c.BodyParser(&in); err != nil {
		return nil, nil, err
	}
	if violations := validation.Check(&in); len(violations) > 0 {
		return nil, violations, nil
	}
	doc := in.Model()
	return &doc, nil, nil
}
