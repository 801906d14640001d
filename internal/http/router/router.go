// Package router assembles the full HTTP surface: health and metrics at the
// root, public routes under /api, and bearer-protected routes under /api
// behind the auth middleware.
package router

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authHandler "motorvault/internal/auth/handler"
	"motorvault/internal/booking"
	"motorvault/internal/dashboard"
	"motorvault/internal/dealer"
	"motorvault/internal/finance"
	"motorvault/internal/http/shared"
	"motorvault/internal/insurance"
	"motorvault/internal/marketplace"
	"motorvault/internal/platform/metrics"
	"motorvault/internal/platform/middleware"
	"motorvault/internal/promotion"
	"motorvault/internal/provider"
	"motorvault/internal/roadside"
	"motorvault/internal/vehicle"
)

const requestTimeout = 30 * time.Second

// Deps carries everything the router mounts. Health may be nil when no
// backing database is configured.
type Deps struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Verifier middleware.TokenVerifier
	Health   func(ctx context.Context) error

	Auth        *authHandler.Handler
	Dashboard   *dashboard.Handler
	Vehicles    *vehicle.Handler
	Insurance   *insurance.Handler
	Finance     *finance.Handler
	Roadside    *roadside.Handler
	Bookings    *booking.Handler
	Dealers     *dealer.Handler
	Providers   *provider.Handler
	Promotions  *promotion.Handler
	Marketplace *marketplace.Handler
}

func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Latency(d.Metrics))
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", d.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Group(func(pub chi.Router) {
			d.Auth.RegisterPublic(pub)
			d.Dealers.RegisterPublic(pub)
			d.Providers.RegisterPublic(pub)
			d.Promotions.RegisterPublic(pub)
			d.Marketplace.RegisterPublic(pub)
		})

		api.Group(func(priv chi.Router) {
			priv.Use(middleware.RequireAuth(d.Verifier, d.Logger))
			d.Auth.RegisterProtected(priv)
			d.Dashboard.RegisterProtected(priv)
			d.Vehicles.RegisterProtected(priv)
			d.Insurance.RegisterProtected(priv)
			d.Finance.RegisterProtected(priv)
			d.Roadside.RegisterProtected(priv)
			d.Bookings.RegisterProtected(priv)
			d.Marketplace.RegisterProtected(priv)
		})
	})

	return r
}

func (d Deps) handleHealth(w http.ResponseWriter, r *http.Request) {
	if d.Health != nil {
		if err := d.Health(r.Context()); err != nil {
			shared.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
	}
	shared.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
