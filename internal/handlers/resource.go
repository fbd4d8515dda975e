package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"lapak/internal/models"
	"lapak/internal/repositories"
)

// Labels carries the per-entity message fragments. Display names the entity
// in identifier errors ("Grocery ID is required"), Item names it in outcome
// messages ("Clothes item not found") and Plural in list failures.
type Labels struct {
	Display string
	Item    string
	Plural  string
}

// EventSink receives a notification for every successful mutation.
// Implementations must be safe for concurrent use.
type EventSink interface {
	PublishChange(entity, action, id string) error
}

// Options carries the cross-cutting collaborators shared by every resource
// handler. ExposeErrors controls whether raw internal error text appears in
// 500 bodies; it must stay off in production deployments.
type Options struct {
	Log          zerolog.Logger
	Events       EventSink
	ExposeErrors bool
}

// Resource handles the five CRUD operations for one entity. The decode
// function parses and validates the request body; the optional conflict
// function runs after validation and before the write, returning a message
// when the payload collides with an existing document.
type Resource[T any] struct {
	path     string
	labels   Labels
	repo     repositories.Repository[T]
	decode   func(c *fiber.Ctx) (*T, []string, error)
	conflict func(ctx context.Context, doc *T, exclude models.Key) (string, error)
	events   EventSink
	log      zerolog.Logger
	expose   bool
}

func newResource[T any](
	path string,
	labels Labels,
	repo repositories.Repository[T],
	decode func(c *fiber.Ctx) (*T, []string, error),
	opts Options,
) *Resource[T] {
	return &Resource[T]{
		path:   path,
		labels: labels,
		repo:   repo,
		decode: decode,
		events: opts.Events,
		log:    opts.Log,
		expose: opts.ExposeErrors,
	}
}

// RegisterRoutes registers the five CRUD routes under the resource path.
func (h *Resource[T]) RegisterRoutes(router fiber.Router) {
	routes := router.Group(h.path)
	routes.Get("/", h.HandleGetAll)
	routes.Post("/", h.HandleCreate)
	routes.Get("/:id", h.HandleGetOne)
	routes.Put("/:id", h.HandleUpdate)
	routes.Delete("/:id", h.HandleDelete)
}

// HandleGetAll returns every document in the collection. An empty
// collection is a 200 with an empty array, not a 404.
func (h *Resource[T]) HandleGetAll(c *fiber.Ctx) error {
	docs, err := h.repo.GetAll(c.Context())
	if err != nil {
		return h.serverError(c, "Failed to retrieve "+h.labels.Plural, err)
	}
	if docs == nil {
		docs = []T{}
	}
	return c.Status(fiber.StatusOK).JSON(docs)
}

// HandleGetOne returns the document addressed by the path identifier.
func (h *Resource[T]) HandleGetOne(c *fiber.Ctx) error {
	id, ok, err := h.requireID(c)
	if !ok {
		return err
	}

	doc, err := h.repo.GetByID(c.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound(c, h.labels.Item+" not found")
	}
	if err != nil {
		return h.serverError(c, "Failed to retrieve "+lower(h.labels.Item), err)
	}
	return c.Status(fiber.StatusOK).JSON(doc)
}

// HandleCreate validates the body, runs the conflict check when the entity
// has one, and inserts a new document.
func (h *Resource[T]) HandleCreate(c *fiber.Ctx) error {
	doc, violations, err := h.decode(c)
	if err != nil {
		return badRequest(c, "Request body is required and must be an object")
	}
	if len(violations) > 0 {
		return validationFailed(c, violations)
	}

	if h.conflict != nil {
		msg, err := h.conflict(c.Context(), doc, models.NilKey)
		if err != nil {
			return h.serverError(c, "Failed to create "+lower(h.labels.Item), err)
		}
		if msg != "" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": msg})
		}
	}

	id, err := h.repo.Create(c.Context(), doc)
	if err != nil {
		return h.serverError(c, "Failed to create "+lower(h.labels.Item), err)
	}

	h.publish(c, "created", id)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"message": h.labels.Item + " created successfully",
	})
}

// HandleUpdate replaces the full document addressed by the path identifier.
// A payload identical to the stored document is a 200 with a distinct
// "data unchanged" message, not an error.
func (h *Resource[T]) HandleUpdate(c *fiber.Ctx) error {
	id, ok, err := h.requireID(c)
	if !ok {
		return err
	}

	doc, violations, err := h.decode(c)
	if err != nil {
		return badRequest(c, "Request body is required and must be an object")
	}
	if len(violations) > 0 {
		return validationFailed(c, violations)
	}

	if h.conflict != nil {
		msg, err := h.conflict(c.Context(), doc, id)
		if err != nil {
			return h.serverError(c, "Failed to update "+lower(h.labels.Item), err)
		}
		if msg != "" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": msg})
		}
	}

	res, err := h.repo.Replace(c.Context(), id, doc)
	if err != nil {
		return h.serverError(c, "Failed to update "+lower(h.labels.Item), err)
	}
	if !res.Matched {
		return notFound(c, h.labels.Item+" not found")
	}
	if !res.Modified {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": h.labels.Item + " data unchanged"})
	}

	h.publish(c, "updated", id)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": h.labels.Item + " updated successfully"})
}

// HandleDelete removes the document addressed by the path identifier.
// Deletion is permanent; a second delete of the same key is a 404.
func (h *Resource[T]) HandleDelete(c *fiber.Ctx) error {
	id, ok, err := h.requireID(c)
	if !ok {
		return err
	}

	deleted, err := h.repo.Delete(c.Context(), id)
	if err != nil {
		return h.serverError(c, "Failed to delete "+lower(h.labels.Item), err)
	}
	if !deleted {
		return notFound(c, h.labels.Item+" not found")
	}

	h.publish(c, "deleted", id)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": h.labels.Item + " deleted successfully"})
}

// requireID enforces the identifier checks shared by get/update/delete.
// When ok is false the response has already been written and the handler
// must return the accompanying error.
func (h *Resource[T]) requireID(c *fiber.Ctx) (models.Key, bool, error) {
	raw := c.Params("id")
	if raw == "" {
		return models.NilKey, false, badRequest(c, h.labels.Display+" ID is required")
	}
	id, err := models.ParseKey(raw)
	if err != nil {
		return models.NilKey, false, badRequest(c, fmt.Sprintf("Invalid %s ID format", lower(h.labels.Display)))
	}
	return id, true, nil
}

// serverError logs the full error server-side and returns a 500 whose
// details carry the raw error text only when detail exposure is enabled.
func (h *Resource[T]) serverError(c *fiber.Ctx, msg string, err error) error {
	h.log.Error().
		Err(err).
		Str("entity", lower(h.labels.Display)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg(msg)

	details := "Internal server error"
	if h.expose && err != nil {
		details = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   msg,
		"details": details,
	})
}

// publish notifies the event sink of a successful mutation. Failures are
// logged and never surfaced to the client.
func (h *Resource[T]) publish(c *fiber.Ctx, action string, id models.Key) {
	if h.events == nil {
		return
	}
	entity := lower(h.labels.Display)
	if err := h.events.PublishChange(entity, action, id.Hex()); err != nil {
		h.log.Warn().
			Err(err).
			Str("entity", entity).
			Str("action", action).
			Msg("failed to publish change event")
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msg})
}

func validationFailed(c *fiber.Ctx, violations []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "Validation failed",
		"details": violations,
	})
}

func lower(s string) string {
	return strings.ToLower(s)
}
