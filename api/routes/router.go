package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/autonovo/autonovo-backend/api/controllers"
	"github.com/autonovo/autonovo-backend/api/middleware"
	"github.com/autonovo/autonovo-backend/internal/analytics"
	"github.com/autonovo/autonovo-backend/internal/kyc"
	"github.com/autonovo/autonovo-backend/internal/mailer"
	"github.com/autonovo/autonovo-backend/internal/moderation"
	"github.com/autonovo/autonovo-backend/internal/vehicles"
	"github.com/autonovo/autonovo-backend/pkg/config"
	"github.com/autonovo/autonovo-backend/pkg/logger"
)

// Deps carries everything the HTTP surface needs.
type Deps struct {
	Config     *config.Config
	Logger     *logger.Logger
	Health     map[string]controllers.Pinger
	Kyc        kyc.Service
	Vehicles   vehicles.Service
	Moderation moderation.Service
	Mailer     *mailer.Dispatcher
	Reporter   *analytics.Reporter
	Metrics    prometheus.Gatherer
}

// NewRouter assembles the API route tree.
func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.Health))
	})

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/vehicle-types", controllers.VehicleTypes())
			r.Get("/diagnostic-ratings", controllers.DiagnosticRatings())
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Post("/account-approved", controllers.Notify(deps.Mailer, mailer.KindAccountApproved, logg))
			r.Post("/ad-approved", controllers.Notify(deps.Mailer, mailer.KindAdApproved, logg))
			r.Post("/admin-alert", controllers.Notify(deps.Mailer, mailer.KindAdminAlert, logg))
			r.Post("/document-status", controllers.Notify(deps.Mailer, mailer.KindDocumentStatus, logg))
		})

		r.Post("/analytics/page-view", controllers.CollectPageView(deps.Reporter, logg))

		r.Get("/vehicles/slug/{slug}", controllers.VehicleBySlug(deps.Vehicles, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(cfg.JWT, logg))
			r.Get("/kyc/status", controllers.KycStatus(deps.Kyc, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))
			r.Post("/vehicles", controllers.CreateVehicle(deps.Vehicles, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.RequireAdmin(logg))

		r.Route("/moderation", func(r chi.Router) {
			r.Get("/pending-counts", controllers.PendingCounts(deps.Moderation, logg))
			r.Get("/vehicles", controllers.PendingVehicles(deps.Vehicles, logg))
			r.Post("/vehicles/{vehicleID}", controllers.ModerateVehicle(deps.Vehicles, logg))
		})
	})

	return r
}
