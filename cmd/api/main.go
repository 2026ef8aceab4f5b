package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bath14971-sudo/dom-car-finder/api/routes"
	"github.com/bath14971-sudo/dom-car-finder/internal/admins"
	"github.com/bath14971-sudo/dom-car-finder/internal/advisor"
	"github.com/bath14971-sudo/dom-car-finder/internal/auth"
	"github.com/bath14971-sudo/dom-car-finder/internal/cart"
	"github.com/bath14971-sudo/dom-car-finder/internal/catalog"
	checkoutsvc "github.com/bath14971-sudo/dom-car-finder/internal/checkout"
	"github.com/bath14971-sudo/dom-car-finder/internal/orders"
	"github.com/bath14971-sudo/dom-car-finder/internal/reports"
	"github.com/bath14971-sudo/dom-car-finder/internal/users"
	"github.com/bath14971-sudo/dom-car-finder/internal/wishlist"
	"github.com/bath14971-sudo/dom-car-finder/pkg/auth/session"
	"github.com/bath14971-sudo/dom-car-finder/pkg/config"
	"github.com/bath14971-sudo/dom-car-finder/pkg/db"
	"github.com/bath14971-sudo/dom-car-finder/pkg/logger"
	"github.com/bath14971-sudo/dom-car-finder/pkg/metrics"
	"github.com/bath14971-sudo/dom-car-finder/pkg/migrate"
	"github.com/bath14971-sudo/dom-car-finder/pkg/outbox"
	"github.com/bath14971-sudo/dom-car-finder/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	gormDB := dbClient.DB()
	userRepo := users.NewRepository(gormDB)
	adminRepo := admins.NewRepository(gormDB)
	catalogRepo := catalog.NewRepository(gormDB)
	cartRepo := cart.NewRepository(gormDB)
	wishlistRepo := wishlist.NewRepository(gormDB)
	orderRepo := orders.NewRepository(gormDB)
	outboxService := outbox.NewService(outbox.NewRepository(gormDB), logg)

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		AdminChecker:   adminRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	requireService(logg, "auth service", err)

	catalogService, err := catalog.NewService(catalog.ServiceParams{
		CarRepo: catalogRepo,
		Logger:  logg,
	})
	requireService(logg, "catalog service", err)

	cartService, err := cart.NewService(cart.ServiceParams{
		CartRepo: cartRepo,
		CarRepo:  catalogRepo,
	})
	requireService(logg, "cart service", err)

	wishlistService, err := wishlist.NewService(wishlist.ServiceParams{
		WishlistRepo: wishlistRepo,
		CarRepo:      catalogRepo,
	})
	requireService(logg, "wishlist service", err)

	checkoutService, err := checkoutsvc.NewService(checkoutsvc.ServiceParams{
		CartRepo:  cartRepo,
		OrderRepo: checkoutsvc.NewRepository(gormDB),
		UserRepo:  userRepo,
		Tx:        dbClient,
		Events:    outboxService,
		Logger:    logg,
	})
	requireService(logg, "checkout service", err)

	ordersService, err := orders.NewService(orders.ServiceParams{
		OrderRepo: orderRepo,
		Tx:        dbClient,
		Events:    outboxService,
		Logger:    logg,
	})
	requireService(logg, "orders service", err)

	reportsService, err := reports.NewService(reports.ServiceParams{
		Repo: reports.NewRepository(gormDB),
	})
	requireService(logg, "reports service", err)

	advisorClient, err := advisor.NewClient(cfg.Advisor, catalogRepo, logg)
	requireService(logg, "advisor client", err)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:       cfg,
			Logger:       logg,
			Redis:        redisClient,
			Sessions:     sessionManager,
			AdminChecker: adminRepo,
			HTTPMetrics:  metrics.NewHTTPMetrics(prometheus.DefaultRegisterer),
			Auth:         authService,
			Catalog:      catalogService,
			Cart:         cartService,
			Wishlist:     wishlistService,
			Checkout:     checkoutService,
			Orders:       ordersService,
			Reports:      reportsService,
			Advisor:      advisorClient,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func requireService(logg *logger.Logger, name string, err error) {
	if err == nil {
		return
	}
	logg.Error(context.Background(), "failed to create "+name, err)
	os.Exit(1)
}
