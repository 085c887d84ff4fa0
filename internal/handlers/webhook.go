package handlers

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/pauljaws/StackBot/internal/config"
	"github.com/pauljaws/StackBot/internal/metrics"
	"github.com/pauljaws/StackBot/internal/models"
	"github.com/pauljaws/StackBot/internal/pipeline"
	"github.com/pauljaws/StackBot/internal/validation"
)

// Classifier turns raw user text into an NLU result.
type Classifier interface {
	Query(ctx context.Context, text, sessionID string) (*models.NLUResult, error)
}

// Sender delivers a reply to the chat platform, fire-and-forget.
type Sender interface {
	SendAsync(recipientID, text string)
}

// Resolver runs the tool resolution pipeline.
type Resolver interface {
	Resolve(ctx context.Context, phrase string) (string, *pipeline.ResolutionError)
}

// WebhookHandler is the chat-channel adapter: it verifies webhook
// subscriptions and maps inbound messaging events onto pipeline invocations
// and outbound sends.
type WebhookHandler struct {
	cfg      *config.Config
	replies  *config.Replies
	nlu      Classifier
	resolver Resolver
	sender   Sender
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(cfg *config.Config, replies *config.Replies, nlu Classifier, resolver Resolver, sender Sender) *WebhookHandler {
	return &WebhookHandler{
		cfg:      cfg,
		replies:  replies,
		nlu:      nlu,
		resolver: resolver,
		sender:   sender,
	}
}

// Verify answers the platform's webhook subscription handshake.
// The challenge is echoed only when mode and token match; anything else
// gets a 403 and the pipeline is never entered.
func (h *WebhookHandler) Verify(c fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == h.cfg.MessengerVerifyToken {
		return c.SendString(challenge)
	}

	return c.Status(fiber.StatusForbidden).SendString("verification failed")
}

// Receive accepts a webhook event batch. Each messaging event is handled in
// its own goroutine; the platform gets an immediate 200 regardless of what
// the events resolve to.
func (h *WebhookHandler) Receive(c fiber.Ctx) error {
	var event models.WebhookEvent
	if err := c.Bind().Body(&event); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed event payload")
	}

	if event.Object != "page" {
		return c.SendString("EVENT_RECEIVED")
	}

	for _, entry := range event.Entry {
		for _, msg := range entry.Messaging {
			if msg.Message == nil {
				continue
			}
			go h.handleMessage(context.Background(), msg.Sender.ID, msg.Message)
		}
	}

	return c.SendString("EVENT_RECEIVED")
}

// handleMessage processes one inbound message to one terminal outcome.
// Delivery failures are logged inside the sender and never retried.
func (h *WebhookHandler) handleMessage(ctx context.Context, senderID string, msg *models.ReceivedMessage) {
	if len(msg.Attachments) > 0 {
		metrics.RecordResolution("attachment", models.OutcomeUnsupported)
		h.sender.SendAsync(senderID, h.replies.Attachment)
		return
	}

	if msg.Text == "" {
		return
	}

	nluResult, err := h.nlu.Query(ctx, msg.Text, sessionID(senderID))
	if err != nil {
		slog.Error("nlu query failed", "sender", senderID, "error", err)
		h.sender.SendAsync(senderID, h.replies.Fallback)
		return
	}

	if nluResult.Action != h.cfg.FindToolAction || nluResult.ToolType == "" {
		// Not a tool lookup: relay whatever the NLU itself proposed.
		speech := nluResult.Speech
		if speech == "" {
			speech = h.replies.Greeting
		}
		h.sender.SendAsync(senderID, speech)
		return
	}

	answer, resErr := h.resolver.Resolve(ctx, nluResult.ToolType)
	if resErr != nil {
		metrics.RecordResolution(validation.Slugify(nluResult.ToolType), resErr.Outcome())
		h.sender.SendAsync(senderID, h.replies.Fallback)
		return
	}

	metrics.RecordResolution(validation.Slugify(nluResult.ToolType), models.OutcomeResolved)
	h.sender.SendAsync(senderID, answer)
}

// sessionID derives a stable per-sender NLU session id.
func sessionID(senderID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(senderID)).String()
}
