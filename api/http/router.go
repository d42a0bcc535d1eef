package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sabin7k/ukstudy/api/http/handlers"
)

// Handlers groups everything Register wires onto the app.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Health    *handlers.HealthHandler
	Chat      *handlers.ChatHandler
	Recommend *handlers.RecommendHandler
	Profile   *handlers.ProfileHandler
	Advice    *handlers.AdviceHandler
	Catalog   *handlers.CatalogHandler
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h Handlers, authRequired fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", h.Auth.Register)
	a.Post("/login", h.Auth.Login)
	a.Get("/me", authRequired, h.Auth.Me)

	// Public reference data
	v1.Get("/universities", h.Catalog.List)
	v1.Get("/advice/checklist", h.Advice.Checklist)
	v1.Get("/advice/living-cost", h.Advice.LivingCost)
	v1.Post("/profile/normalize-gpa", h.Profile.NormalizeGPA)

	// Recommendations
	r := v1.Group("/recommend", authRequired)
	r.Post("/strict", h.Recommend.Strict)
	r.Post("/relaxed", h.Recommend.Relaxed)
	r.Post("/by-budget", h.Recommend.ByBudget)
	r.Get("/waiver-friendly", h.Recommend.WaiverFriendly)
	r.Get("/affordable", h.Recommend.Affordable)

	v1.Post("/profile/transcript", authRequired, h.Profile.Transcript)

	// Chat sessions
	ch := v1.Group("/chat", authRequired)
	ch.Get("/sessions", h.Chat.ListSessions)
	ch.Post("/sessions", h.Chat.CreateSession)
	ch.Delete("/sessions", h.Chat.DeleteAll)
	ch.Get("/sessions/:id/messages", h.Chat.Messages)
	ch.Post("/sessions/:id/message", h.Chat.Send)
	ch.Get("/history", h.Chat.History)
}
