package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/darziapp/darzi-backend/api/controllers"
	dashboardcontrollers "github.com/darziapp/darzi-backend/api/controllers/dashboard"
	"github.com/darziapp/darzi-backend/api/middleware"
	"github.com/darziapp/darzi-backend/internal/customers"
	"github.com/darziapp/darzi-backend/internal/dashboard"
	"github.com/darziapp/darzi-backend/internal/measurements"
	"github.com/darziapp/darzi-backend/internal/orders"
	"github.com/darziapp/darzi-backend/internal/payments"
	"github.com/darziapp/darzi-backend/internal/shops"
	"github.com/darziapp/darzi-backend/internal/tailors"
	"github.com/darziapp/darzi-backend/pkg/config"
	"github.com/darziapp/darzi-backend/pkg/db"
	"github.com/darziapp/darzi-backend/pkg/logger"
	"github.com/darziapp/darzi-backend/pkg/metrics"
	"github.com/darziapp/darzi-backend/pkg/redis"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       db.Pinger
	Redis    *redis.Client
	Metrics  *metrics.HTTPMetrics
	Registry *prometheus.Registry

	Shops        shops.Service
	Customers    customers.Service
	Tailors      tailors.Service
	Orders       orders.Service
	Payments     payments.Service
	Measurements measurements.Service
	Dashboard    dashboard.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.Metrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, deps.Redis, logg))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Get("/api/public/ping", controllers.Ping())

	// Shop onboarding happens before a token exists.
	r.Post("/api/v1/shops", controllers.ShopCreate(deps.Shops, logg))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.Idempotency(deps.Redis, logg))

		r.Route("/shop", func(r chi.Router) {
			r.Get("/", controllers.ShopGet(deps.Shops, logg))
			r.Patch("/", controllers.ShopUpdate(deps.Shops, logg))
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", controllers.CustomerList(deps.Customers, logg))
			r.Post("/", controllers.CustomerCreate(deps.Customers, logg))
			r.Get("/{customerID}", controllers.CustomerGet(deps.Customers, logg))
			r.Patch("/{customerID}", controllers.CustomerUpdate(deps.Customers, logg))
			r.Delete("/{customerID}", controllers.CustomerDelete(deps.Customers, logg))
			r.Get("/{customerID}/measurements", controllers.MeasurementListByCustomer(deps.Measurements, logg))
		})

		r.Route("/tailors", func(r chi.Router) {
			r.Get("/", controllers.TailorList(deps.Tailors, logg))
			r.Post("/", controllers.TailorCreate(deps.Tailors, logg))
			r.Get("/{tailorID}", controllers.TailorGet(deps.Tailors, logg))
			r.Patch("/{tailorID}", controllers.TailorUpdate(deps.Tailors, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrderList(deps.Orders, logg))
			r.Post("/", controllers.OrderCreate(deps.Orders, logg))
			r.Get("/{orderID}", controllers.OrderGet(deps.Orders, logg))
			r.Patch("/{orderID}", controllers.OrderUpdate(deps.Orders, logg))
			r.Post("/{orderID}/status", controllers.OrderUpdateStatus(deps.Orders, logg))
			r.Get("/{orderID}/payments", controllers.PaymentListByOrder(deps.Payments, logg))
		})

		r.Post("/payments", controllers.PaymentRecord(deps.Payments, logg))

		r.Route("/measurements", func(r chi.Router) {
			r.Post("/", controllers.MeasurementCreate(deps.Measurements, logg))
			r.Patch("/{measurementID}", controllers.MeasurementUpdate(deps.Measurements, logg))
			r.Delete("/{measurementID}", controllers.MeasurementDelete(deps.Measurements, logg))
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/earnings", dashboardcontrollers.Earnings(deps.Dashboard, logg))
			r.Get("/categories", dashboardcontrollers.Categories(deps.Dashboard, logg))
		})
	})

	return r
}
