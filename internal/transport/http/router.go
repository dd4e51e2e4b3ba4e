// Package httptransport assembles the chi router from the per-module
// handlers. Handlers delegate to domain services; the only logic here is
// middleware layering and route grouping.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"quickclaim/internal/platform/middleware"
	"quickclaim/internal/transport/http/shared"
)

// Registrable is implemented by every module handler.
type Registrable interface {
	Register(r chi.Router)
}

type RouterConfig struct {
	Logger     *slog.Logger
	Validator  middleware.TokenValidator
	AdminToken string

	// User mounts under bearer auth, Admin under the admin token check.
	User  []Registrable
	Admin []Registrable
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))

	r.Get("/healthz", handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(cfg.Validator, cfg.Logger))
		for _, h := range cfg.User {
			h.Register(r)
		}
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdminToken(cfg.AdminToken, cfg.Logger))
		for _, h := range cfg.Admin {
			h.Register(r)
		}
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	shared.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
