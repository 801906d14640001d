// Package dashboard aggregates per-owner counts across the record services
// for the home screen.
package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"motorvault/internal/booking"
	"motorvault/internal/finance"
	"motorvault/internal/http/shared"
	"motorvault/internal/insurance"
	"motorvault/internal/roadside"
	"motorvault/internal/vehicle"
	"motorvault/pkg/requestcontext"
)

type Stats struct {
	Vehicles        int64 `json:"vehicles"`
	ActiveInsurance int64 `json:"active_insurance_policies"`
	ActiveFinance   int64 `json:"active_finance_products"`
	ActiveRoadside  int64 `json:"active_roadside_memberships"`
	PendingBookings int64 `json:"pending_bookings"`
}

type Service struct {
	vehicles  *vehicle.Service
	insurance *insurance.Service
	finance   *finance.Service
	roadside  *roadside.Service
	bookings  *booking.Service
}

func NewService(
	vehicles *vehicle.Service,
	ins *insurance.Service,
	fin *finance.Service,
	rsa *roadside.Service,
	bookings *booking.Service,
) *Service {
	return &Service{
		vehicles:  vehicles,
		insurance: ins,
		finance:   fin,
		roadside:  rsa,
		bookings:  bookings,
	}
}

// Stats gathers the five counts concurrently. The first failing count cancels
// the rest.
func (s *Service) Stats(ctx context.Context, userID string) (Stats, error) {
	var stats Stats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.vehicles.Count(gctx, userID)
		stats.Vehicles = n
		return err
	})
	g.Go(func() error {
		n, err := s.insurance.CountActive(gctx, userID)
		stats.ActiveInsurance = n
		return err
	})
	g.Go(func() error {
		n, err := s.finance.CountActive(gctx, userID)
		stats.ActiveFinance = n
		return err
	})
	g.Go(func() error {
		n, err := s.roadside.CountActive(gctx, userID)
		stats.ActiveRoadside = n
		return err
	})
	g.Go(func() error {
		n, err := s.bookings.CountPending(gctx, userID)
		stats.PendingBookings = n
		return err
	})

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

type Handler struct {
	logger *slog.Logger
	stats  *Service
}

func NewHandler(stats *Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, stats: stats}
}

func (h *Handler) RegisterProtected(r chi.Router) {
	r.Get("/dashboard/stats", h.handleStats)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.stats.Stats(ctx, requestcontext.UserID(ctx))
	if err != nil {
		h.logger.WarnContext(ctx, "dashboard stats failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, stats)
}
