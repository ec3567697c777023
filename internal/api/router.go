package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"smart-routing-service/internal/api/handlers"
	"smart-routing-service/internal/metrics"
	"smart-routing-service/internal/ports"
	"smart-routing-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// Cache and repo may be nil when Redis/Postgres are not configured.
func NewRouter(
	repo ports.PlanRepository,
	planCache ports.PlanCache,
	opts services.Options,
	limiter *rate.Limiter,
) http.Handler {
	mux := http.NewServeMux()

	optimizeHandler := &handlers.OptimizeHandler{
		Cache: planCache,
		Repo:  repo,
		Opts:  opts,
	}
	wilayaHandler := &handlers.WilayaHandler{}
	planHandler := &handlers.PlanHandler{Repo: repo}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/v1/routes/optimize", optimizeHandler.Optimize)
	mux.HandleFunc("/v1/wilayas", wilayaHandler.List)
	mux.HandleFunc("/v1/plans", planHandler.List)
	mux.HandleFunc("/v1/plans/", planHandler.Get)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return rateLimitMiddleware(limiter, loggingMiddleware(mux))
}
