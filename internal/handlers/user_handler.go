package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"lapak/internal/models"
	"lapak/internal/repositories"
	"lapak/internal/validation"
)

// NewUserHandler creates the CRUD handler for the user collection. Users
// carry a uniqueness rule on username, checked before every write and
// excluding the document's own key on replace. The check and the write are
// two separate storage calls, so concurrent creates with the same new
// username can both pass it.
func NewUserHandler(repo repositories.UserRepository, opts Options) *Resource[models.User] {
	h := newResource[models.User](
		"/user",
		Labels{Display: "User", Item: "User", Plural: "users"},
		repo,
		decodeUser,
		opts,
	)
	h.conflict = func(ctx context.Context, doc *models.User, exclude models.Key) (string, error) {
		taken, err := repo.UsernameTaken(ctx, doc.Username, exclude)
		if err != nil {
			return "", err
		}
		if taken {
			return "Username already exists", nil
		}
		return "", nil
	}
	return h
}

func decodeUser(c *fiber.Ctx) (*models.User, []string, error) {
	var in models.UserInput
	if err := c.BodyParser(&in); err != nil {
		return nil, nil, err
	}
	if violations := validation.Check(&in); len(violations) > 0 {
		return nil, violations, nil
	}
	doc := in.Model()
	return &doc, nil, nil
}
