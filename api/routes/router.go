package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/boothlabs/boothtrack-backend/api/controllers"
	"github.com/boothlabs/boothtrack-backend/api/middleware"
	"github.com/boothlabs/boothtrack-backend/internal/catalog"
	"github.com/boothlabs/boothtrack-backend/internal/inquiries"
	"github.com/boothlabs/boothtrack-backend/internal/reporting"
	"github.com/boothlabs/boothtrack-backend/internal/views"
	"github.com/boothlabs/boothtrack-backend/internal/visitors"
	"github.com/boothlabs/boothtrack-backend/pkg/config"
	"github.com/boothlabs/boothtrack-backend/pkg/logger"
	"github.com/boothlabs/boothtrack-backend/pkg/metrics"
	"github.com/boothlabs/boothtrack-backend/pkg/mongodb"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP mongodb.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
	visitorService visitors.Service,
	catalogService catalog.Service,
	viewService views.Service,
	inquiryService inquiries.Service,
	reportingService reporting.Service,
	now func() time.Time,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID(logg),
		middleware.Recoverer(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, logg))
	})

	r.Post("/visitor/check-or-create", controllers.CheckOrCreateVisitor(visitorService, logg))

	r.Route("/products", func(r chi.Router) {
		r.Get("/", controllers.ListProducts(catalogService, logg))
		r.Get("/{productId}", controllers.GetProduct(catalogService, logg))
		r.Get("/{productId}/stats", controllers.GetProductStats(viewService, logg))
		r.Post("/{productId}/view", controllers.RecordProductView(viewService, logg))
	})

	r.Post("/inquiry/create", controllers.CreateInquiry(inquiryService, logg))

	r.Route("/admin", func(r chi.Router) {
		r.Get("/stats", controllers.AdminStats(reportingService, logg))
		r.Get("/export", controllers.AdminExport(reportingService, logg, now))
	})

	if gatherer != nil {
		r.Get("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}).ServeHTTP)
	}

	return r
}
