package handler

import (
	"net/http"

	"hpzbot/internal/app/identity"
	"hpzbot/internal/pkg/errs"
	"hpzbot/internal/pkg/limiter"
	"hpzbot/internal/pkg/logx"
	"hpzbot/internal/pkg/resp"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Router builds the HTTP routing table: global middleware (CORS, request id,
// logging, panic recovery, rate limiting), the health probe, and the /api
// route groups.
func Router(deps *AppDeps) http.Handler {
	r := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{deps.Config.FrontendURL},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	rateLimiter := limiter.New(
		deps.Config.RateLimitMaxRequests,
		deps.Config.RateLimitWindow,
		func(req *http.Request) string {
			if id := identity.FromContext(req); id != nil {
				return id.ID.String()
			}
			return ""
		},
	)

	r.Use(corsHandler.Handler)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(recoverJSON)
	r.Use(rateLimiter.Middleware)

	r.Get("/health", HandleHealth(deps))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/validate-key", HandleValidateKey(deps))

			r.Group(func(r chi.Router) {
				r.Use(identity.RequireAuth(deps.Verifier))
				r.Get("/validate", HandleValidateToken(deps))
				r.Get("/me", HandleMe(deps))
			})
		})

		r.Route("/chat", func(r chi.Router) {
			r.Get("/status", HandleChatStatus(deps))

			r.Group(func(r chi.Router) {
				r.Use(identity.RequireAuth(deps.Verifier))
				r.Post("/message", HandleChatMessage(deps))
				r.Get("/commands", HandleListCommands(deps))
				r.Post("/command", HandleExecuteCommand(deps))
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		resp.RespondError(w, req, errs.NewError(errs.ErrRouteNotFound, req.URL.Path))
	})

	return r
}

// HandleHealth reports process liveness for load balancer probes.
func HandleHealth(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondJSON(w, r, http.StatusOK, map[string]any{
			"status":    "OK",
			"timestamp": timestamp(),
			"service":   "HPZ Chatbot Backend",
			"version":   "1.0.0",
		})
	}
}

// recoverJSON catches panics from downstream handlers and turns them into a
// JSON 500 instead of chi's default plain-text response.
func recoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logx.Error(nil, "Panic recovered", "panic", rec)
				resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
