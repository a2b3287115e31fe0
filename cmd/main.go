// @title Notes Backend API
// @version 1.0
// @description Multi-user notes service with token authentication
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token returned by /login.

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	_ "NOTES_BACK-END/docs" // This is required for swagger
	"NOTES_BACK-END/internal/auth"
	"NOTES_BACK-END/internal/config"
	"NOTES_BACK-END/internal/database"
	"NOTES_BACK-END/internal/handlers"
	"NOTES_BACK-END/internal/logger"
	"NOTES_BACK-END/internal/repository"
	"NOTES_BACK-END/internal/routes"
	"NOTES_BACK-END/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// --- Services ---
	tokens := auth.NewTokenManager(cfg.JWT)
	authService, err := service.NewAuthService(repository.NewUserRepository(pool), tokens, cfg.Auth.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create auth service")
	}
	noteService := service.NewNoteService(repository.NewNoteRepository(pool))

	// --- HTTP Handlers ---
	router := routes.NewRouter(
		handlers.NewAuthHandler(authService),
		handlers.NewNotesHandler(noteService),
		handlers.NewHealthHandler(pool),
		authService,
	)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Dur("token_ttl", tokens.TTL()).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		log.Error().Err(err).Msg("HTTP server failed")
	case <-ctx.Done():
		log.Info().Msg("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}
	log.Info().Msg("Server stopped")
}
