package handlers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pauljaws/StackBot/internal/config"
	"github.com/pauljaws/StackBot/internal/metrics"
	"github.com/pauljaws/StackBot/internal/models"
	"github.com/pauljaws/StackBot/internal/validation"
)

// responseSource identifies this service in fulfillment responses.
const responseSource = "stackbot"

// toolTypeParam is the fulfillment parameter carrying the extracted phrase.
const toolTypeParam = "tool-type"

// FulfillmentHandler is the NLU-callback adapter. It always answers with a
// 200 and a {speech, displayText} body; failure renders as an apology, not
// as a transport error.
type FulfillmentHandler struct {
	cfg      *config.Config
	resolver Resolver
}

// NewFulfillmentHandler creates a new fulfillment handler.
func NewFulfillmentHandler(cfg *config.Config, resolver Resolver) *FulfillmentHandler {
	return &FulfillmentHandler{cfg: cfg, resolver: resolver}
}

// Fulfill responds to the NLU service's fulfillment callback.
// Only the configured find-tool action invokes the pipeline; every other
// action echoes the request's own proposed speech unchanged.
func (h *FulfillmentHandler) Fulfill(c fiber.Ctx) error {
	var req models.FulfillmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed fulfillment payload")
	}

	if req.Result.Action != h.cfg.FindToolAction {
		return c.JSON(models.FulfillmentResponse{
			Speech:      req.Result.Fulfillment.Speech,
			DisplayText: req.Result.Fulfillment.Speech,
			Source:      responseSource,
		})
	}

	phrase := req.Result.Parameters[toolTypeParam]
	slug := validation.Slugify(phrase)

	answer, resErr := h.resolver.Resolve(c.Context(), phrase)
	if resErr != nil {
		metrics.RecordResolution(slug, resErr.Outcome())
		return c.JSON(models.FulfillmentResponse{
			Speech:      resErr.Message,
			DisplayText: resErr.Message,
			Source:      responseSource,
		})
	}

	metrics.RecordResolution(slug, models.OutcomeResolved)
	return c.JSON(models.FulfillmentResponse{
		Speech:      answer,
		DisplayText: answer,
		Source:      responseSource,
	})
}
