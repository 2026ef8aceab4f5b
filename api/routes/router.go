package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bath14971-sudo/dom-car-finder/api/controllers"
	"github.com/bath14971-sudo/dom-car-finder/api/middleware"
	"github.com/bath14971-sudo/dom-car-finder/internal/admins"
	authsvc "github.com/bath14971-sudo/dom-car-finder/internal/auth"
	"github.com/bath14971-sudo/dom-car-finder/internal/cart"
	"github.com/bath14971-sudo/dom-car-finder/internal/catalog"
	checkoutsvc "github.com/bath14971-sudo/dom-car-finder/internal/checkout"
	"github.com/bath14971-sudo/dom-car-finder/internal/orders"
	"github.com/bath14971-sudo/dom-car-finder/internal/reports"
	"github.com/bath14971-sudo/dom-car-finder/internal/wishlist"
	"github.com/bath14971-sudo/dom-car-finder/pkg/auth/session"
	"github.com/bath14971-sudo/dom-car-finder/pkg/config"
	"github.com/bath14971-sudo/dom-car-finder/pkg/logger"
	"github.com/bath14971-sudo/dom-car-finder/pkg/metrics"
	"github.com/bath14971-sudo/dom-car-finder/pkg/redis"
)

// Deps carries everything the HTTP surface needs. The router owns route
// shape and middleware ordering; construction of the services stays in main.
type Deps struct {
	Config       *config.Config
	Logger       *logger.Logger
	Redis        *redis.Client
	Sessions     session.AccessSessionChecker
	AdminChecker admins.Checker
	HTTPMetrics  *metrics.HTTPMetrics

	Auth     authsvc.Service
	Catalog  catalog.Service
	Cart     cart.Service
	Wishlist wishlist.Service
	Checkout checkoutsvc.Service
	Orders   orders.Service
	Reports  reports.Service
	Advisor  controllers.ChatStreamer
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, deps.Redis, logg)).Post("/register", controllers.Register(deps.Auth, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/login", controllers.Login(deps.Auth, logg))
		r.Post("/refresh", controllers.Refresh(deps.Auth, logg))
		r.With(middleware.Auth(cfg.JWT, deps.Sessions, logg)).Post("/logout", controllers.Logout(deps.Auth, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Storefront browse and the advisor stay anonymous.
		r.Get("/cars", controllers.ListCars(deps.Catalog, logg))
		r.Get("/cars/{id}", controllers.GetCar(deps.Catalog, logg))
		r.Post("/advisor/chat", controllers.AdvisorChat(deps.Advisor, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.GetCart(deps.Cart, logg))
				r.Post("/items", controllers.AddCartItem(deps.Cart, logg))
				r.Delete("/items/{id}", controllers.RemoveCartItem(deps.Cart, logg))
				r.Delete("/", controllers.ClearCart(deps.Cart, logg))
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", controllers.GetWishlist(deps.Wishlist, logg))
				r.Get("/ids", controllers.GetWishlistIDs(deps.Wishlist, logg))
				r.Post("/toggle", controllers.ToggleWishlist(deps.Wishlist, logg))
			})

			r.Post("/checkout", controllers.Checkout(deps.Checkout, logg))

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.ListMyOrders(deps.Orders, logg))
				r.Get("/{id}", controllers.GetMyOrder(deps.Orders, logg))
			})

			r.Get("/maps/key", controllers.MapsKey(cfg.GoogleMaps, logg))

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin(deps.AdminChecker, logg))

				r.Route("/cars", func(r chi.Router) {
					r.Get("/", controllers.AdminListCars(deps.Catalog, logg))
					r.Post("/", controllers.AdminCreateCar(deps.Catalog, logg))
					r.Get("/{id}", controllers.AdminGetCar(deps.Catalog, logg))
					r.Patch("/{id}", controllers.AdminUpdateCar(deps.Catalog, logg))
					r.Delete("/{id}", controllers.AdminDeleteCar(deps.Catalog, logg))
				})

				r.Route("/orders", func(r chi.Router) {
					r.Get("/", controllers.AdminListOrders(deps.Orders, logg))
					r.Get("/{id}", controllers.AdminGetOrder(deps.Orders, logg))
					r.Patch("/{id}/status", controllers.AdminUpdateOrderStatus(deps.Orders, logg))
				})

				r.Get("/reports", controllers.AdminReport(deps.Reports, logg))
			})
		})
	})

	return r
}
