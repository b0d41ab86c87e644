package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/storefront/internal/config"
	"github.com/Lixing-Zhang/storefront/internal/handlers"
	"github.com/Lixing-Zhang/storefront/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type routerDeps struct {
	cfg      *config.Config
	logger   *slog.Logger
	health   *handlers.HealthHandler
	products *handlers.ProductHandler
	static   *handlers.StaticHandler
}

// newRouter builds the route table. Explicit routes win; every other
// request, including a known path with the wrong method, falls through to
// the static asset handler.
func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(d.logger))
	if d.cfg.Metrics.Enabled {
		r.Use(middleware.Metrics)
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(chimiddleware.GetHead)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", d.health.ServeHTTP)
	r.Get("/api/products", d.products.ListProducts)
	r.Get("/", d.static.ServeEntry)

	if d.cfg.Metrics.Enabled {
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	}

	r.NotFound(d.static.ServeAsset)
	r.MethodNotAllowed(d.static.ServeAsset)

	return r
}
