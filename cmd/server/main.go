package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	authHandler "motorvault/internal/auth/handler"
	authService "motorvault/internal/auth/service"
	authStore "motorvault/internal/auth/store"
	"motorvault/internal/booking"
	"motorvault/internal/dashboard"
	"motorvault/internal/dealer"
	"motorvault/internal/finance"
	"motorvault/internal/http/router"
	"motorvault/internal/insurance"
	"motorvault/internal/jwttoken"
	"motorvault/internal/marketplace"
	"motorvault/internal/platform/config"
	"motorvault/internal/platform/httpserver"
	"motorvault/internal/platform/logger"
	"motorvault/internal/platform/metrics"
	platformMongo "motorvault/internal/platform/mongo"
	"motorvault/internal/promotion"
	"motorvault/internal/provider"
	"motorvault/internal/regoscan"
	"motorvault/internal/roadside"
	"motorvault/internal/vehicle"
)

func main() {
	log := logger.New()

	if err := run(log); err != nil {
		log.Error("server exited", "error", err.Error())
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	mongoClient, err := platformMongo.New(cfg)
	if err != nil {
		return err
	}

	stores, err := buildStores(mongoClient)
	if err != nil {
		return err
	}
	if mongoClient == nil {
		log.Warn("MONGO_URL not set, using in-memory stores")
	}

	tokens := jwttoken.New(cfg.JWT)
	m := metrics.New()

	var extractor regoscan.Extractor
	if cfg.ExtractorURL != "" {
		extractor = regoscan.NewHTTPExtractor(cfg.ExtractorURL, cfg.ExtractorAPIKey)
	}

	auth := authService.NewService(stores.users, tokens)
	vehicles := vehicle.NewService(stores.vehicles)
	policies := insurance.NewService(stores.insurance)
	products := finance.NewService(stores.finance)
	memberships := roadside.NewService(stores.roadside)
	bookings := booking.NewService(stores.bookings)
	dealers := dealer.NewService(stores.dealers)
	providers := provider.NewService(stores.providers)
	promotions := promotion.NewService(stores.promotions)
	listings := marketplace.NewService(stores.marketplace, vehicles)
	stats := dashboard.NewService(vehicles, policies, products, memberships, bookings)

	deps := router.Deps{
		Logger:   log,
		Metrics:  m,
		Verifier: jwttoken.NewAdapter(tokens),

		Auth:        authHandler.New(auth, log, m),
		Dashboard:   dashboard.NewHandler(stats, log),
		Vehicles:    vehicle.NewHandler(vehicles, extractor, log),
		Insurance:   insurance.NewHandler(policies, log),
		Finance:     finance.NewHandler(products, log),
		Roadside:    roadside.NewHandler(memberships, log),
		Bookings:    booking.NewHandler(bookings, log),
		Dealers:     dealer.NewHandler(dealers),
		Providers:   provider.NewHandler(providers),
		Promotions:  promotion.NewHandler(promotions),
		Marketplace: marketplace.NewHandler(listings, log),
	}
	if mongoClient != nil {
		deps.Health = mongoClient.Health
	}

	srv := httpserver.New(cfg.Addr, router.New(deps))

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if mongoClient != nil {
		if err := mongoClient.Close(shutdownCtx); err != nil {
			log.Warn("mongo disconnect failed", "error", err.Error())
		}
	}
	return nil
}

// storeSet holds one store per collection, either all Mongo-backed or all
// in-memory.
type storeSet struct {
	users       authService.UserStore
	vehicles    vehicle.Store
	insurance   insurance.Store
	finance     finance.Store
	roadside    roadside.Store
	bookings    booking.Store
	dealers     dealer.Store
	providers   provider.Store
	promotions  promotion.Store
	marketplace marketplace.Store
}

func buildStores(client *platformMongo.Client) (storeSet, error) {
	if client == nil {
		return storeSet{
			users:       authStore.NewInMemoryUserStore(),
			vehicles:    vehicle.NewInMemoryStore(),
			insurance:   insurance.NewInMemoryStore(),
			finance:     finance.NewInMemoryStore(),
			roadside:    roadside.NewInMemoryStore(),
			bookings:    booking.NewInMemoryStore(),
			dealers:     dealer.NewInMemoryStore(),
			providers:   provider.NewInMemoryStore(),
			promotions:  promotion.NewInMemoryStore(),
			marketplace: marketplace.NewInMemoryStore(),
		}, nil
	}

	db := client.Database()
	users := authStore.NewMongoUserStore(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := users.EnsureIndexes(ctx); err != nil {
		return storeSet{}, err
	}

	return storeSet{
		users:       users,
		vehicles:    vehicle.NewMongoStore(db),
		insurance:   insurance.NewMongoStore(db),
		finance:     finance.NewMongoStore(db),
		roadside:    roadside.NewMongoStore(db),
		bookings:    booking.NewMongoStore(db),
		dealers:     dealer.NewMongoStore(db),
		providers:   provider.NewMongoStore(db),
		promotions:  promotion.NewMongoStore(db),
		marketplace: marketplace.NewMongoStore(db),
	}, nil
}
