package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/ustwo-backend/internal/config"
	"github.com/heartmarshall/ustwo-backend/internal/transport/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Views    *ViewHandler
	Commands *CommandHandler
	// CommandLimit throttles the command endpoint; nil means unlimited.
	CommandLimit middleware.Middleware
}

// NewRouter wires the middleware stack and every route.
//
//	GET  /, /live                          liveness
//	GET  /ready, /health                   store checks
//	GET  /guilds/{guildID}/dates           date ideas by category
//	GET  /guilds/{guildID}/memories        memories, newest first
//	GET  /guilds/{guildID}/milestones      milestones with countdowns
//	POST /guilds/{guildID}/commands/{name} run a chat command
func NewRouter(log *slog.Logger, cors config.CORSConfig, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID(),
		middleware.Recovery(log),
		middleware.Logger(log),
		middleware.CORS(cors),
	)

	r.Get("/", h.Health.Live)
	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/guilds/{"+middleware.GuildIDParam+"}", func(r chi.Router) {
		r.Use(middleware.Tenant())

		r.Get("/dates", h.Views.DateIdeas)
		r.Get("/memories", h.Views.Memories)
		r.Get("/milestones", h.Views.Milestones)
		r.Group(func(r chi.Router) {
			if h.CommandLimit != nil {
				r.Use(h.CommandLimit)
			}
			r.Post("/commands/{"+CommandNameParam+"}", h.Commands.Execute)
		})
	})

	return r
}
