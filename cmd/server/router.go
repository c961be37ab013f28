package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/wooteco-subway/favorite-api/internal/api"
	apimiddleware "github.com/wooteco-subway/favorite-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceID)

	memberHandler := api.NewMemberHandler(app.memberService, app.logger)
	favoriteHandler := api.NewFavoriteHandler(app.favoriteService, app.logger)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.identity, app.logger)

	// Public endpoints
	r.Post("/members", memberHandler.Register)
	r.Post("/oauth/token", memberHandler.IssueToken)

	// Everything under /me requires a valid bearer token.
	r.Route("/me", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/", memberHandler.GetMe)
		r.Patch("/", memberHandler.UpdateMe)
		r.Delete("/", memberHandler.DeleteMe)

		r.Post("/favorites", favoriteHandler.Create)
		r.Get("/favorites", favoriteHandler.List)
		r.Get("/favorites/from/{sourceId}/to/{targetId}", favoriteHandler.Exists)
		r.Delete("/favorites/{favoriteId}", favoriteHandler.Delete)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
