package api

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"github.com/pauljaws/StackBot/internal/pipeline"
	"github.com/pauljaws/StackBot/internal/validation"
)

// Resolver runs the tool resolution pipeline.
type Resolver interface {
	Resolve(ctx context.Context, phrase string) (string, *pipeline.ResolutionError)
}

// ResolveHandler exposes a pipeline dry-run for operators: same stages as
// the chat channel, but the failure kind is visible in the response.
type ResolveHandler struct {
	resolver Resolver
}

// NewResolveHandler creates a new API resolve handler.
func NewResolveHandler(resolver Resolver) *ResolveHandler {
	return &ResolveHandler{resolver: resolver}
}

// Resolve runs the pipeline for a phrase without touching any chat channel.
func (h *ResolveHandler) Resolve(c fiber.Ctx) error {
	phrase := c.Params("phrase")

	answer, resErr := h.resolver.Resolve(c.Context(), phrase)
	if resErr != nil {
		return jsonError(c, statusForKind(resErr.Kind), string(resErr.Kind))
	}

	return jsonSuccess(c, fiber.Map{
		"slug":   validation.Slugify(phrase),
		"answer": answer,
	})
}

// statusForKind maps a failure kind onto an HTTP status for the ops API.
// The chat and fulfillment channels never do this; only operators see
// failure kinds.
func statusForKind(kind pipeline.Kind) int {
	switch kind {
	case pipeline.KindNotFound, pipeline.KindNoResults:
		return fiber.StatusNotFound
	case pipeline.KindUnsupported:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusBadGateway
	}
}
