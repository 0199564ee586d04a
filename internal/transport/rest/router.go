package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/config"
	"github.com/binharademo/trelloclone/internal/transport/dataloader"
	"github.com/binharademo/trelloclone/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

// RouterDeps holds everything the HTTP surface is built from.
type RouterDeps struct {
	Logger      *slog.Logger
	Tokens      tokenValidator
	Auth        *AuthHandler
	Boards      *BoardHandler
	Cards       *CardHandler
	Health      *HealthHandler
	ClientLog   *ClientLogHandler
	Loaders     *dataloader.Repos
	RateLimiter *middleware.RateLimiter
	RateLimit   config.RateLimitConfig
	CORS        config.CORSConfig

	// Optional.
	Metrics   http.Handler
	WebSocket http.Handler
}

// NewRouter mounts every endpoint. Health probes, metrics, auth and client
// log ingestion are public; everything else requires a valid access token.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
	)

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics)
	}

	r.Route("/auth", func(r chi.Router) {
		r.Use(d.RateLimiter.Limit(d.RateLimit.AuthPerMinute))
		r.Post("/register", d.Auth.Register)
		r.Post("/login", d.Auth.Login)
	})

	// Browser clients ship their console logs here; a token is optional and
	// only tags the record with the user.
	r.With(
		d.RateLimiter.Limit(d.RateLimit.ClientLogPerMinute),
		middleware.Auth(d.Tokens),
	).Post("/logging/clientlog", d.ClientLog.Log)

	r.Group(func(r chi.Router) {
		r.Use(
			middleware.Auth(d.Tokens),
			middleware.RequireAuth,
			dataloader.Middleware(d.Loaders),
		)

		r.Route("/boards", func(r chi.Router) {
			r.Get("/", d.Boards.List)
			r.Post("/", d.Boards.Create)
			r.Get("/{boardID}", d.Boards.Get)
			r.Delete("/{boardID}", d.Boards.Delete)
		})

		r.Route("/lists/{listID}/cards", func(r chi.Router) {
			r.Get("/", d.Boards.ListCards)
			r.Post("/", d.Cards.CreateInList)
		})

		r.Route("/cards", func(r chi.Router) {
			r.Post("/", d.Cards.Create)
			r.Get("/{cardID}", d.Cards.Get)
			r.Put("/{cardID}", d.Cards.Update)
			r.Delete("/{cardID}", d.Cards.Delete)
			r.Put("/{cardID}/move", d.Cards.Move)
			r.Get("/{cardID}/history", d.Cards.History)
		})

		if d.WebSocket != nil {
			r.Handle("/ws", d.WebSocket)
		}
	})

	return r
}
