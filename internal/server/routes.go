package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pauljaws/StackBot/internal/config"
	"github.com/pauljaws/StackBot/internal/db"
	"github.com/pauljaws/StackBot/internal/handlers"
	"github.com/pauljaws/StackBot/internal/handlers/api"
	"github.com/pauljaws/StackBot/internal/messenger"
	"github.com/pauljaws/StackBot/internal/middleware"
	"github.com/pauljaws/StackBot/internal/nlu"
	"github.com/pauljaws/StackBot/internal/pipeline"
	"github.com/pauljaws/StackBot/internal/ranking"
)

// RegisterRoutes wires the clients, the pipeline and all application routes.
// The ranking client is returned so main can hand it to the upstream checker.
func (s *Server) RegisterRoutes(database *db.DB, replies *config.Replies) *ranking.Client {
	// Outbound clients
	rankingClient := ranking.New(s.Cfg)
	nluClient := nlu.New(s.Cfg)
	sendClient := messenger.New(s.Cfg)

	// Resolution pipeline
	resolver := pipeline.New(database, rankingClient)

	// Middleware
	signature := middleware.NewSignatureMiddleware(s.Cfg.MessengerAppSecret)

	// Handlers
	webhookHandler := handlers.NewWebhookHandler(s.Cfg, replies, nluClient, resolver, sendClient)
	fulfillmentHandler := handlers.NewFulfillmentHandler(s.Cfg, resolver)
	probeHandler := handlers.NewProbeHandler(database)
	resolveHandler := api.NewResolveHandler(resolver)
	toolTypeHandler := api.NewToolTypeHandler(database)

	// Webhook routes (chat channel)
	s.App.Get("/webhook", webhookHandler.Verify)
	s.App.Post("/webhook", signature.Verify, webhookHandler.Receive)

	// NLU fulfillment callback
	s.App.Post("/fulfillment", fulfillmentHandler.Fulfill)

	// Ops API routes
	s.App.Get("/api/resolve/:phrase", resolveHandler.Resolve)
	s.App.Get("/api/tool-types", toolTypeHandler.List)
	s.App.Get("/api/tool-types/:slug", toolTypeHandler.Get)
	s.App.Put("/api/tool-types/:slug", toolTypeHandler.Upsert)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return rankingClient
}
