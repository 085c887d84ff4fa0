package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/pauljaws/StackBot/internal/db"
	"github.com/pauljaws/StackBot/internal/validation"
)

// ToolTypeHandler manages the slug-to-identifier mappings via JSON API.
// This is the ops surface for provisioning the store; the pipeline only
// ever reads it.
type ToolTypeHandler struct {
	db *db.DB
}

// NewToolTypeHandler creates a new tool-type handler.
func NewToolTypeHandler(database *db.DB) *ToolTypeHandler {
	return &ToolTypeHandler{db: database}
}

// List returns all tool-type mappings.
func (h *ToolTypeHandler) List(c fiber.Ctx) error {
	toolTypes, err := h.db.ListToolTypes(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to list tool types")
	}
	return jsonSuccess(c, toolTypes)
}

// Get returns the mapping for a single slug.
func (h *ToolTypeHandler) Get(c fiber.Ctx) error {
	slug := validation.Slugify(c.Params("slug"))

	toolType, err := h.db.GetToolTypeBySlug(c.Context(), slug)
	if err != nil {
		if errors.Is(err, db.ErrToolTypeNotFound) {
			return jsonError(c, fiber.StatusNotFound, "tool type not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to look up tool type")
	}
	return jsonSuccess(c, toolType)
}

type upsertToolTypeRequest struct {
	Identifier  string `json:"identifier"`
	DisplayName string `json:"display_name"`
}

// Upsert creates or updates the mapping for a slug.
func (h *ToolTypeHandler) Upsert(c fiber.Ctx) error {
	slug := validation.Slugify(c.Params("slug"))
	if !validation.ValidateSlug(slug) {
		return jsonError(c, fiber.StatusBadRequest, "invalid slug")
	}

	var req upsertToolTypeRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed body")
	}
	if req.Identifier == "" {
		return jsonError(c, fiber.StatusBadRequest, "identifier is required")
	}

	toolType, err := h.db.UpsertToolType(c.Context(), slug, req.Identifier, req.DisplayName)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to upsert tool type")
	}
	return jsonSuccess(c, toolType)
}
