package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	askHandler "github.com/pi2026/clubsite/backend/internal/handler/ask"
	authHandler "github.com/pi2026/clubsite/backend/internal/handler/auth"
	memberHandler "github.com/pi2026/clubsite/backend/internal/handler/member"
	middlewarePkg "github.com/pi2026/clubsite/backend/internal/middleware"
	"github.com/pi2026/clubsite/backend/pkg/utils"
)

// Deps carries everything the router needs to wire routes.
type Deps struct {
	Auth    *authHandler.Handler
	Members *memberHandler.Handler
	Ask     *askHandler.Handler

	// Sessions validates bearer tokens for the protected subtree.
	Sessions middlewarePkg.TokenValidator
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]any{"ok": true})
		})

		deps.Auth.RegisterRoutes(api)
		deps.Members.RegisterRoutes(api)

		api.Group(func(protected chi.Router) {
			protected.Use(middlewarePkg.BearerAuth(deps.Sessions))
			deps.Members.RegisterProtectedRoutes(protected)
			deps.Ask.RegisterRoutes(protected)
		})
	})

	return r
}
