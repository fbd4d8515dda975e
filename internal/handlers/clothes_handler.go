package handlers

import (
	"github.com/gofiber/fiber/v2"

	"lapak/internal/models"
	"lapak/internal/repositories"
	"lapak/internal/validation"
)

// NewClothesHandler creates the CRUD handler for the clothes collection.
func NewClothesHandler(repo repositories.Repository[models.Clothes], opts Options) *Resource[models.Clothes] {
	return newResource[models.Clothes](
		"/clothes",
		Labels{Display: "Clothes", Item: "Clothes item", Plural: "clothes"},
		repo,
		decodeClothes,
		opts,
	)
}

func decodeClothes(c *fiber.Ctx) (*models.Clothes, []string, error) {
	var in models.ClothesInput
	if err := c.BodyParser(&in); err != nil {
		return nil, nil, err
	}
	if violations := validation.Check(&in); len(violations) > 0 {
		return nil, violations, nil
	}
	doc := in.Model()
	return &doc, nil, nil
}
