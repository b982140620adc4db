// Package httpapi assembles the public HTTP surface. Handlers register their
// own routes; this package only decides where each module mounts.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhandler "sciport/internal/auth/handler"
	cataloghandler "sciport/internal/catalog/handler"
	"sciport/internal/dashboard"
	platformredis "sciport/internal/platform/redis"
)

// Deps are the mounted handler modules. Redis is optional; when present its
// health feeds the /api/health endpoint.
type Deps struct {
	Auth         *authhandler.Handler
	Projects     *cataloghandler.ProjectHandler
	Employees    *cataloghandler.EmployeeHandler
	Publications *cataloghandler.PublicationHandler
	Finances     *cataloghandler.FinanceHandler
	Dashboard    *dashboard.Handler
	Redis        *platformredis.Client
}

// NewRouter wires all public endpoints.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	var redisHealth func(context.Context) error
	if deps.Redis != nil {
		redisHealth = deps.Redis.Health
	}
	r.Get("/api/health", handleHealth(redisHealth))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/auth", deps.Auth.Register)
	r.Route("/api/projects", deps.Projects.Register)
	r.Route("/api/employees", deps.Employees.Register)
	r.Route("/api/publications", deps.Publications.Register)
	r.Route("/api/finances", deps.Finances.Register)
	r.Route("/api/dashboard", deps.Dashboard.Register)

	return r
}

func handleHealth(redisHealth func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if redisHealth != nil {
			if err := redisHealth(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(map[string]string{"status": "unavailable"})
				return
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
