package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"

	"NOTES_BACK-END/internal/handlers"
	"NOTES_BACK-END/internal/middleware"
)

// NewRouter configures all application routes
func NewRouter(
	authHandler *handlers.AuthHandler,
	notesHandler *handlers.NotesHandler,
	healthHandler *handlers.HealthHandler,
	verifier middleware.TokenVerifier,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(hlog.NewHandler(log.Logger))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("request_id", chimiddleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(chimiddleware.Recoverer)

	// Health check routes
	r.Get("/health", healthHandler.HealthCheck)
	r.Get("/livez", healthHandler.LivenessCheck)
	r.Get("/readyz", healthHandler.ReadinessCheck)

	// Authentication routes
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// Note routes
	r.Route("/notes", func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(verifier))
		r.Post("/", notesHandler.Create)
		r.Get("/", notesHandler.List)
		r.Put("/{id}", notesHandler.Update)
		r.Delete("/{id}", notesHandler.Delete)
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
